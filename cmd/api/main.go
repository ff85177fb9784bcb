package main

import (
	"time"

	"artspace/internal/config"
	"artspace/internal/domain/model"
	"artspace/internal/handler"
	"artspace/internal/infra/db"
	infraRepo "artspace/internal/infra/repository"
	"artspace/internal/server"
	"artspace/internal/usecase"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

type realClock struct{}

func (c *realClock) Now() time.Time {
	return time.Now()
}

type jwtIssuer struct {
	secret    []byte
	accessTTL time.Duration
}

func newJWTIssuer(secret string) *jwtIssuer {
	return &jwtIssuer{
		secret:    []byte(secret),
		accessTTL: 24 * time.Hour,
	}
}

func (i *jwtIssuer) Issue(user model.User, now time.Time) (string, time.Time, error) {
	expiresAt := now.Add(i.accessTTL)

	claims := jwt.MapClaims{
		"sub":      user.ID,
		"username": user.Username,
		"roles":    user.RoleList(),
		"iat":      now.Unix(),
		"exp":      expiresAt.Unix(),
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, err
	}

	return signed, expiresAt, nil
}

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	//.envは無くてもよい（本番は環境変数で渡す）
	if err := godotenv.Load(".env"); err != nil {
		log.Debug("no .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("failed to load config")
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Order{},
		&model.OrderItem{},
		&model.ChatMessage{},
		&model.HomeSettings{},
	); err != nil {
		log.WithError(err).Fatal("failed to migrate database")
	}

	//Repository（GORM実装）生成
	userRepo := infraRepo.NewUserGormRepository(gormDB)
	productRepo := infraRepo.NewProductGormRepository(gormDB)
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	chatRepo := infraRepo.NewChatMessageGormRepository(gormDB)
	settingsRepo := infraRepo.NewHomeSettingsGormRepository(gormDB)

	//usecaseに渡す部品
	idGen := &uuidGenerator{}
	clock := &realClock{}
	hasher := usecase.NewBcryptPasswordHasher(12)
	verifier := usecase.NewBcryptPasswordVerifier()
	issuer := newJWTIssuer(cfg.JWTSecret)

	//Usecase生成
	authUC := usecase.NewAuthUsecase(userRepo, productRepo, hasher, verifier, issuer, idGen, clock)
	productUC := usecase.NewProductUsecase(productRepo, idGen, clock)
	orderUC := usecase.NewOrderUsecase(orderRepo, productRepo, idGen, clock)
	chatUC := usecase.NewChatUsecase(chatRepo, idGen, clock)
	settingsUC := usecase.NewSettingsUsecase(settingsRepo, idGen)

	//Handler生成
	handlers := server.Handlers{
		Auth:     handler.NewAuthHandler(authUC),
		Products: handler.NewProductHandler(productUC),
		Orders:   handler.NewOrderHandler(orderUC),
		Chat:     handler.NewChatHandler(chatUC),
		Settings: handler.NewSettingsHandler(settingsUC),
		Upload:   handler.NewUploadHandler(cfg),
	}

	log.WithFields(logrus.Fields{
		"port": cfg.Port,
		"env":  cfg.GoEnv,
	}).Info("starting api server")

	//Server起動
	if err := server.Start(cfg, handlers); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
