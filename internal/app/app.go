package app

import (
	"log"
	"os"

	"github.com/hoangson03112/VietXanh/internal/cart"
	"github.com/hoangson03112/VietXanh/internal/cloudinary"
	"github.com/hoangson03112/VietXanh/internal/email"
	"github.com/hoangson03112/VietXanh/internal/shared/connection"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine, logger *zap.Logger) error {
	// 1. Setup Infrastructure
	db, err := connection.ConnectDBWithRetry(os.Getenv("DB_URL"), 5)
	if err != nil {
		return err
	}

	// 2. Cart storage + change feed. Redis keeps carts shared across API
	// replicas; without it each instance falls back to its own memory.
	var (
		cartStorage cart.Storage
		cartBus     cart.Bus
	)
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		redisClient, err := connection.ConnectRedisWithRetry(addr, 5)
		if err != nil {
			return err
		}
		cartStorage = cart.NewRedisStorage(redisClient)
		cartBus = cart.NewRedisBus(redisClient, logger)
	} else if dir := os.Getenv("CART_DIR"); dir != "" {
		fileStorage, err := cart.NewFileStorage(dir)
		if err != nil {
			return err
		}
		cartStorage = fileStorage
		cartBus = cart.NewLocalBus()
		log.Println("⚠️ REDIS_ADDR not set, carts stored on disk at " + dir)
	} else {
		cartStorage = cart.NewMemoryStorage()
		cartBus = cart.NewLocalBus()
		log.Println("⚠️ REDIS_ADDR not set, carts are in-memory only")
	}

	// 3. Setup Third Party Services
	cloudinaryService, err := cloudinary.NewService(
		os.Getenv("CLOUDINARY_CLOUD_NAME"),
		os.Getenv("CLOUDINARY_API_KEY"),
		os.Getenv("CLOUDINARY_API_SECRET"),
		os.Getenv("CLOUDINARY_FOLDER"),
	)
	if err != nil {
		return err
	}

	emailService, err := email.NewResendServiceFromEnv()
	if err != nil {
		emailService = email.NewNoopService()
		log.Println("⚠️ RESEND_API_KEY not set, emails are disabled")
	}

	// 4. Register Modules & Routes
	registerModules(router, moduleDeps{
		db:          db,
		cartStorage: cartStorage,
		cartBus:     cartBus,
		cloudinary:  cloudinaryService,
		email:       emailService,
		logger:      logger,
	})

	return nil
}
