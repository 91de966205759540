package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"kampusku_backend/internals/configs"
)

var DB *gorm.DB

// =======================
// DATABASE CONNECTOR
// =======================
func ConnectDB() {
	dsn := configs.GetEnv("DATABASE_URL")
	if dsn == "" {
		dbUser := configs.GetEnv("DB_USER")
		dbPassword := configs.GetEnv("DB_PASSWORD")
		dbHost := configs.GetEnv("DB_HOST", "localhost")
		dbPort := configs.GetEnv("DB_PORT", "5432")
		dbName := configs.GetEnv("DB_NAME")
		dbSSL := configs.GetEnv("DB_SSLMODE", "require")

		dsn = fmt.Sprintf("postgresql://%s:%s@%s:%s/%s?sslmode=%s",
			dbUser, dbPassword, dbHost, dbPort, dbName, dbSSL)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  dsn,
		PreferSimpleProtocol: true, // ✅ hindari cache prepared statement
	}), &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		log.Fatalf("❌ Gagal koneksi ke database: %v", err)
	}

	DB = db
	log.Println("✅ Database terkoneksi.")
}

// TunePool menyetel connection pool agar selaras dengan limit Postgres.
func TunePool() {
	sqlDB, err := DB.DB()
	if err != nil {
		log.Printf("[WARN] gagal ambil sql.DB untuk tuning pool: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxLifetime(30 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)
}

// WarmUpQueries memanaskan koneksi + plan cache untuk query pertama.
func WarmUpQueries() {
	start := time.Now()
	var one int
	if err := DB.Raw("SELECT 1").Scan(&one).Error; err != nil {
		log.Printf("[WARN] warm-up gagal: %v", err)
		return
	}
	var n int64
	_ = DB.Table("students").Count(&n).Error
	log.Printf("✅ Warm-up selesai (%s, %d students)", time.Since(start), n)
}
