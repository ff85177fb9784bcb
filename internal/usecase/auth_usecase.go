package usecase

import (
	"context"
	"errors"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"artspace/internal/domain/model"
	repo "artspace/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// 平文パスワードからハッシュへ
type PasswordHasher interface {
	Hash(plain string) (string, error)
}

// 入力パスワードと保存したハッシュを比べる約束
type PasswordVerifier interface {
	Verify(plain string, hashed string) bool
}

// JWTを発行する約束
type AccessTokenIssuer interface {
	Issue(user model.User, now time.Time) (token string, expiresAt time.Time, err error)
}

type AuthUsecase struct {
	users    repo.UserRepository
	products repo.ProductRepository
	hasher   PasswordHasher
	verifier PasswordVerifier
	issuer   AccessTokenIssuer
	idGen    IDGenerator
	clock    Clock
}

func NewAuthUsecase(
	users repo.UserRepository,
	products repo.ProductRepository,
	hasher PasswordHasher,
	verifier PasswordVerifier,
	issuer AccessTokenIssuer,
	idGen IDGenerator,
	clock Clock,
) *AuthUsecase {
	return &AuthUsecase{
		users:    users,
		products: products,
		hasher:   hasher,
		verifier: verifier,
		issuer:   issuer,
		idGen:    idGen,
		clock:    clock,
	}
}

type RegisterInput struct {
	Username string
	Email    string
	Password string
	Phone    string
}

type LoginInput struct {
	Username string
	Password string
}

type LoginOutput struct {
	Token     string     `json:"token"`
	TokenType string     `json:"token_type"`
	ExpiresAt time.Time  `json:"expires_at"`
	User      model.User `json:"user"`
}

// Registerは会員登録。初期ロールはUSERのみ。
func (u *AuthUsecase) Register(ctx context.Context, in RegisterInput) (model.User, error) {
	username := strings.TrimSpace(in.Username)
	if len(username) < 3 {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "username too short")
	}
	if _, err := mail.ParseAddress(strings.TrimSpace(in.Email)); err != nil {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "invalid email")
	}
	if len(in.Password) < 6 {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "password too short")
	}

	taken, err := u.users.ExistsByUsername(ctx, username)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if taken {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "username already taken")
	}

	used, err := u.users.ExistsByEmail(ctx, strings.TrimSpace(in.Email))
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if used {
		return model.User{}, NewHTTPError(http.StatusBadRequest, "email already in use")
	}

	hashed, err := u.hasher.Hash(in.Password)
	if err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	now := u.clock.Now()
	user := model.User{
		ID:           u.idGen.NewID(),
		Username:     username,
		Email:        strings.TrimSpace(in.Email),
		PasswordHash: hashed,
		Phone:        in.Phone,
		Roles:        model.JoinRoles(model.RoleUser),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := u.users.Create(ctx, &user); err != nil {
		return model.User{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return user, nil
}

// Loginはユーザー名＋パスワードでJWTを返す。
// 見つからない場合もパスワード不一致と同じ401にする。
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (LoginOutput, error) {
	user, err := u.users.FindByUsername(ctx, strings.TrimSpace(in.Username))
	if errors.Is(err, repo.ErrNotFound) {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if !u.verifier.Verify(in.Password, user.PasswordHash) {
		return LoginOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	now := u.clock.Now()
	token, expiresAt, err := u.issuer.Issue(user, now)
	if err != nil {
		return LoginOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return LoginOutput{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// Bootstrapは初期データ投入。adminユーザーが既にいれば何もしない
// （冪等な初期化。起動時の暗黙状態にはしない）。
func (u *AuthUsecase) Bootstrap(ctx context.Context) error {
	exists, err := u.users.ExistsByUsername(ctx, "admin")
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if exists {
		return NewHTTPError(http.StatusBadRequest, "already initialized")
	}

	hashed, err := u.hasher.Hash("admin123")
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	now := u.clock.Now()
	admin := model.User{
		ID:           u.idGen.NewID(),
		Username:     "admin",
		Email:        "admin@artspace.com",
		PasswordHash: hashed,
		Phone:        "0000000000",
		Roles:        model.JoinRoles(model.RoleUser, model.RoleAdmin),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := u.users.Create(ctx, &admin); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}

	for _, p := range sampleProducts() {
		p.ID = u.idGen.NewID()
		p.CreatedAt = now
		p.UpdatedAt = now
		if err := u.products.Create(ctx, &p); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
	}

	return nil
}

func sampleProducts() []model.Product {
	return []model.Product{
		{
			Title:       "Sunset over Lake",
			Artist:      "Huy Arthur",
			Price:       2500000,
			Description: "A breathtaking sunset view over a serene lake, capturing the warm golden hues reflecting on the water.",
			Category:    "Landscape",
			ImageURL:    "https://images.unsplash.com/photo-1506905925346-21bda4d32df4?w=800",
			Status:      model.ProductStatusAvailable,
		},
		{
			Title:       "Abstract Dreams",
			Artist:      "Mai Lan",
			Price:       5000000,
			Description: "An explosion of colors and shapes that evoke emotion and imagination.",
			Category:    "Abstract",
			ImageURL:    "https://images.unsplash.com/photo-1541961017774-22349e4a1262?w=800",
			Status:      model.ProductStatusAvailable,
		},
		{
			Title:       "Urban Solitude",
			Artist:      "Tuan Kiet",
			Price:       3200000,
			Description: "A portrayal of loneliness in the bustling cityscape.",
			Category:    "Modern",
			ImageURL:    "https://images.unsplash.com/photo-1460661419201-fd4cecdf8a8b?w=800",
			Status:      model.ProductStatusAvailable,
		},
		{
			Title:       "Spring Blossoms",
			Artist:      "Linh Nguyen",
			Price:       1800000,
			Description: "Delicate cherry blossoms in full bloom, celebrating the beauty of spring.",
			Category:    "Landscape",
			ImageURL:    "https://images.unsplash.com/photo-1490750967868-88aa4486c946?w=800",
			Status:      model.ProductStatusAvailable,
		},
		{
			Title:       "Ocean Depths",
			Artist:      "Huy Arthur",
			Price:       4500000,
			Description: "A mesmerizing underwater scene showcasing the mystery of the deep ocean.",
			Category:    "Landscape",
			ImageURL:    "https://images.unsplash.com/photo-1559827260-dc66d52bef19?w=800",
			Status:      model.ProductStatusAvailable,
		},
		{
			Title:       "Gentle Portrait",
			Artist:      "Mai Lan",
			Price:       3800000,
			Description: "A soft and contemplative portrait capturing human emotion.",
			Category:    "Portrait",
			ImageURL:    "https://images.unsplash.com/photo-1579783902614-a3fb3927b6a5?w=800",
			Status:      model.ProductStatusSold,
		},
	}
}

// bcryptハッシュ化
type BcryptPasswordHasher struct {
	cost int
}

func NewBcryptPasswordHasher(cost int) *BcryptPasswordHasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return &BcryptPasswordHasher{cost: cost}
}

func (h *BcryptPasswordHasher) Hash(plain string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plain), h.cost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// bcryptハッシュと平文を比較
type BcryptPasswordVerifier struct{}

func NewBcryptPasswordVerifier() *BcryptPasswordVerifier {
	return &BcryptPasswordVerifier{}
}

func (v *BcryptPasswordVerifier) Verify(plain string, hashed string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	return err == nil
}
