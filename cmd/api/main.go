package main

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"strings"

	"github.com/joho/godotenv"

	"telestore/internal/config"
	"telestore/internal/handler"
	"telestore/internal/infra/db"
	infraRepo "telestore/internal/infra/repository"
	"telestore/internal/server"
	"telestore/internal/usecase"
)

// orderNumberGenerator makes 8-char uppercase hex order numbers.
type orderNumberGenerator struct{}

func (g *orderNumberGenerator) Generate() (string, error) {
	buf := make([]byte, 4)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return strings.ToUpper(hex.EncodeToString(buf)), nil
}

func main() {
	// .env is optional outside dev
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	gormDB, err := db.Connect(cfg)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	if err := db.Migrate(gormDB); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	categoryRepo := infraRepo.NewCategoryGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	cartRepo := infraRepo.NewCartGormRepository(gormDB)
	cartItemRepo := infraRepo.NewCartItemGormRepository(gormDB)
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	catalogUC := usecase.NewCatalogUsecase(categoryRepo, productRepo, cfg.CategoriesPerPage, cfg.ProductsPerPage)
	cartUC := usecase.NewCartUsecase(cartRepo, cartItemRepo, productRepo)
	orderUC := usecase.NewOrderUsecase(txManager, &orderNumberGenerator{}, cfg.OrdersPerPage)
	userUC := usecase.NewUserUsecase(userRepo, cfg.ItemsPerPage)

	handlers := server.Handlers{
		Category: handler.NewCategoryHandler(catalogUC),
		Product:  handler.NewProductHandler(catalogUC),
		Cart:     handler.NewCartHandler(cartUC),
		Order:    handler.NewOrderHandler(orderUC),
		User:     handler.NewUserHandler(userUC),
	}

	if err := server.Start(cfg, handlers); err != nil {
		log.Fatalf("server: %v", err)
	}
}
