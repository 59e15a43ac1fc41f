package auth

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/gfarias-dev/farmacia-estoque-api/internal/application/dto"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/entity"
	"github.com/gfarias-dev/farmacia-estoque-api/internal/domain/repository"
	"github.com/gfarias-dev/farmacia-estoque-api/pkg/jwt"
)

// JWTConfig configuração para geração de tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase casos de uso de autenticação: registro e login.
type AuthUseCase struct {
	usuarioRepo repository.UsuarioRepository
	jwtCfg      JWTConfig
}

// NewAuthUseCase constrói o caso de uso de auth.
func NewAuthUseCase(usuarioRepo repository.UsuarioRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{usuarioRepo: usuarioRepo, jwtCfg: jwtCfg}
}

// Register cria um usuário: hasheia a senha com bcrypt e persiste.
// Devolve ErrEmailAlreadyExists se o e-mail já estiver cadastrado.
func (uc *AuthUseCase) Register(in dto.RegisterRequest) (*dto.AuthResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || strings.TrimSpace(in.Senha) == "" {
		return nil, domain.ErrInvalidInput
	}
	existente, err := uc.usuarioRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existente != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Senha), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	nome := strings.TrimSpace(in.Nome)
	if nome == "" {
		nome = email
	}
	papel := strings.TrimSpace(in.Papel)
	if papel == "" {
		papel = entity.PapelAtendente
	}
	if papel != entity.PapelAdmin && papel != entity.PapelFarmaceutico && papel != entity.PapelAtendente {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	usuario := &entity.Usuario{
		ID:           uuid.New().String(),
		Nome:         nome,
		Email:        email,
		SenhaHash:    string(hash),
		Papel:        papel,
		UnidadeSaude: strings.TrimSpace(in.UnidadeSaude),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.usuarioRepo.Create(usuario); err != nil {
		return nil, err
	}
	return uc.emitirToken(usuario)
}

// Login verifica e-mail/senha e devolve o JWT.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.AuthResponse, error) {
	usuario, err := uc.usuarioRepo.GetByEmail(strings.ToLower(strings.TrimSpace(in.Email)))
	if err != nil {
		return nil, err
	}
	if usuario == nil {
		return nil, domain.ErrUsuarioNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.SenhaHash), []byte(in.Senha)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	return uc.emitirToken(usuario)
}

func (uc *AuthUseCase) emitirToken(u *entity.Usuario) (*dto.AuthResponse, error) {
	token, err := jwt.Generate(uc.jwtCfg.Secret, u.ID, u.UnidadeSaude, u.Papel, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.AuthResponse{
		Token:   token,
		UserID:  u.ID,
		Nome:    u.Nome,
		Papel:   u.Papel,
		Unidade: u.UnidadeSaude,
	}, nil
}
