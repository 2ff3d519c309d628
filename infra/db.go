package infra

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"bluetech-store/config"
)

// SetupDB はMongoDBへ接続し、データベースハンドルを返す
// 接続できない場合はプロセスを終了する（リトライなし）
func SetupDB(cfg *config.Config) *mongo.Database {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		Logger.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		Logger.Fatalf("Failed to reach MongoDB: %v", err)
	}

	Logger.Infof("Connected to MongoDB database: %s", cfg.DBName)
	return client.Database(cfg.DBName)
}

// PingDB はヘルスチェック用の短いタイムアウト付きPing
func PingDB(db *mongo.Database) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	return db.Client().Ping(ctx, readpref.Primary()) == nil
}
