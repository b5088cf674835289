package database

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	"github.com/redis/go-redis/v9"
)

// --- Variables Globales ---
var (
	Pool  *pgxpool.Pool
	Redis *redis.Client
	MinIO *minio.Client
)

// --- Initialisation ---
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 1. PostgreSQL (obligatoire)
	connectPostgres(ctx)

	// 2. Redis (optionnel : cache + rate limit + pub/sub)
	connectRedis(ctx)

	// 3. MinIO (optionnel : upload d'assets admin)
	connectMinIO(ctx)

	log.Println("✅ Toutes les bases de données sont connectées")
}

// =============================================
// POSTGRESQL
// =============================================
func connectPostgres(ctx context.Context) {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("❌ DATABASE_URL manquant dans .env")
	}

	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		log.Fatal("❌ DATABASE_URL invalide:", err)
	}
	cfg.MaxConns = 20 // assez pour un trafic storefront, ajustable via le DSN

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		log.Fatal("❌ Erreur création pool PostgreSQL:", err)
	}

	if err := pool.Ping(ctx); err != nil {
		log.Fatal("❌ Erreur connexion PostgreSQL:", err)
	}

	Pool = pool
	log.Println("✅ Connecté à PostgreSQL")

	if err := InitTables(ctx); err != nil {
		log.Fatal("❌ Erreur création tables:", err)
	}
}

// =============================================
// REDIS
// =============================================
func connectRedis(ctx context.Context) {
	addr := os.Getenv("REDIS_HOST")
	if addr == "" {
		log.Println("⚠️ Redis non configuré — cache et flux temps réel désactivés")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Println("⚠️ Redis injoignable — on continue sans cache:", err)
		return
	}

	Redis = client
	log.Println("✅ Connecté à Redis")
}

// =============================================
// MINIO
// =============================================
func connectMinIO(ctx context.Context) {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		log.Println("⚠️ MinIO non configuré — upload d'assets désactivé")
		return
	}

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(os.Getenv("MINIO_ACCESS_KEY"), os.Getenv("MINIO_SECRET_KEY"), ""),
		Secure: os.Getenv("MINIO_USE_SSL") == "true",
	})
	if err != nil {
		log.Println("⚠️ Erreur connexion MinIO:", err)
		return
	}

	bucketName := os.Getenv("MINIO_BUCKET")
	if bucketName == "" {
		bucketName = "dmac-assets"
	}

	exists, err := client.BucketExists(ctx, bucketName)
	if err != nil {
		log.Println("⚠️ Erreur vérification bucket MinIO:", err)
		return
	}
	if !exists {
		if err := client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{}); err != nil {
			log.Println("⚠️ Erreur création bucket MinIO:", err)
			return
		}
		log.Println("🪣 Bucket créé :", bucketName)
	} else {
		log.Println("🪣 Bucket MinIO déjà présent :", bucketName)
	}

	MinIO = client
	log.Println("✅ Connecté à MinIO :", endpoint)
}

// Close libère les connexions (utilisé à l'arrêt du serveur).
func Close() {
	if Pool != nil {
		Pool.Close()
		log.Println("🔌 Pool PostgreSQL fermé")
	}
	if Redis != nil {
		Redis.Close()
		log.Println("🔌 Connexion Redis fermée")
	}
}
