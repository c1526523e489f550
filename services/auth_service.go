package services

import (
	"errors"
	"log"
	"strings"
	"time"

	"campuseats/entity"
	"campuseats/pkg/apperr"
	"campuseats/repository"
	"campuseats/utils"

	"golang.org/x/crypto/bcrypt"
)

// AuthService จัดการ business logic ของการ login/register/OTP
type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
	otpTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, jwtTTL, otpTTL time.Duration) *AuthService {
	return &AuthService{
		userRepo:  repo,
		jwtSecret: secret,
		jwtTTL:    jwtTTL,
		otpTTL:    otpTTL,
	}
}

// Register สร้าง user ใหม่ (ยังไม่ verified) และออก OTP
func (s *AuthService) Register(email, password, firstName, lastName, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, apperr.InvalidArgument("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.New("hash password failed")
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		PhoneNumber: strings.TrimSpace(phone),
		Role:        entity.RoleCustomer,
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	if err := s.issueOTP(user); err != nil {
		return nil, err
	}
	return user, nil
}

// issueOTP สร้างรหัสใหม่ทุกครั้ง อันเก่ายังไม่หมดอายุก็ใช้ได้อยู่
// การส่งอีเมลจริงอยู่นอก scope ตอนนี้ log แทน
func (s *AuthService) issueOTP(user *entity.User) error {
	code, err := utils.GenerateOTP()
	if err != nil {
		return err
	}
	otp := &entity.EmailOTP{
		UserID:    user.ID,
		Code:      code,
		ExpiresAt: time.Now().Add(s.otpTTL),
	}
	if err := s.userRepo.CreateOTP(otp); err != nil {
		return err
	}
	log.Printf("OTP for %s: %s (expires %s)", user.Email, code, otp.ExpiresAt.Format(time.RFC3339))
	return nil
}

// VerifyOTP ตรวจรหัสล่าสุดที่ยังไม่หมดอายุ ผ่านแล้ว mark user verified
func (s *AuthService) VerifyOTP(email, code string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return apperr.NotFound("account not found")
	}
	if user.IsVerified {
		return nil
	}

	otp, err := s.userRepo.LatestValidOTP(user.ID, time.Now())
	if err != nil {
		return apperr.InvalidArgument("no valid code, request a new one")
	}
	if otp.Code != code {
		return apperr.InvalidArgument("wrong code")
	}

	if err := s.userRepo.MarkOTPUsed(otp.ID); err != nil {
		return err
	}
	return s.userRepo.SetVerified(user.ID)
}

func (s *AuthService) ResendOTP(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return apperr.NotFound("account not found")
	}
	if user.IsVerified {
		return apperr.InvalidArgument("account already verified")
	}
	return s.issueOTP(user)
}

// Login ตรวจสอบ user + สร้าง JWT (ต้อง verified ก่อน)
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if !user.IsVerified {
		return "", nil, apperr.Forbidden("account not verified")
	}

	token, err := utils.GenerateToken(user.ID, user.Role, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, user, nil
}

// GetProfile
func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	return s.userRepo.FindByID(userID)
}

// UpdateProfile อัปเดตข้อมูลผู้ใช้
func (s *AuthService) UpdateProfile(userID uint, updates map[string]any) (*entity.User, error) {
	if err := s.userRepo.Update(userID, updates); err != nil {
		return nil, err
	}
	return s.userRepo.FindByID(userID)
}
