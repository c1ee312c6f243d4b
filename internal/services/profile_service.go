package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"luxride/internal/domain"
	"luxride/internal/domain/models"
	"luxride/internal/metrics"
	"luxride/internal/repositories"
	"luxride/internal/utils"
)

// FallbackDriverID is the driver id used when a request carries none.
const FallbackDriverID = "DR-2847"

// GeneratedDriverID mints an id from the clock, e.g. DR-1718000000000.
func GeneratedDriverID(now time.Time) string {
	return fmt.Sprintf("DR-%d", now.UnixMilli())
}

// FixedDriverID always answers FallbackDriverID.
func FixedDriverID(time.Time) string { return FallbackDriverID }

type ProfileInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	DriverID  string `json:"driverId"`
}

type PhotoInput struct {
	Photo    string `json:"photo"`
	DriverID string `json:"driverId"`
}

type FullProfileInput struct {
	PersonalInfo *models.PersonalInfo `json:"personalInfo"`
	VehicleInfo  *models.VehicleInfo  `json:"vehicleInfo"`
	Bio          string               `json:"bio"`
	DriverID     string               `json:"driverId"`
}

// ProfileService persists the driver profile documents and the account page.
type ProfileService struct {
	Repo      repositories.ProfileRepository
	Sessions  repositories.SessionRepository
	DriverID  func(time.Time) string
	Now       func() time.Time
	RequestID string
}

func (s ProfileService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s ProfileService) driverID(given string) string {
	if id := strings.TrimSpace(given); id != "" {
		return id
	}
	if s.DriverID != nil {
		return s.DriverID(s.now())
	}
	return GeneratedDriverID(s.now())
}

func DefaultProfile() models.DriverProfile {
	return models.DriverProfile{
		FirstName: "John",
		LastName:  "Smith",
		FullName:  "John Smith",
		DriverID:  FallbackDriverID,
	}
}

func DefaultFullProfile() models.FullProfile {
	return models.FullProfile{
		PersonalInfo: &models.PersonalInfo{
			FullName:         "John Smith",
			Email:            "john.smith@luxride.com",
			Phone:            "+1 (555) 123-4567",
			DOB:              "1985-06-15",
			Address:          "123 Main St, City, State 12345",
			EmergencyContact: "Jane Smith - +1 (555) 987-6543",
		},
		VehicleInfo: &models.VehicleInfo{
			Make:         "Toyota Camry 2022",
			LicensePlate: "ABC-123",
			Color:        "Silver",
			Year:         "2022",
			Capacity:     "4",
			VIN:          "1HGBH41JXMN109186",
		},
		Bio:      "Professional driver with 5+ years of experience. I prioritize safety, comfort, and punctuality.",
		DriverID: FallbackDriverID,
	}
}

func DefaultAccount() models.DriverAccount {
	return models.DriverAccount{
		DriverID:  FallbackDriverID,
		FirstName: "John",
		LastName:  "Smith",
		FullName:  "John Smith",
		Email:     "john.smith@luxride.com",
		Phone:     "+1 (555) 123-4567",
	}
}

func (s ProfileService) SaveProfile(ctx context.Context, in ProfileInput) (models.DriverProfile, error) {
	first, last := strings.TrimSpace(in.FirstName), strings.TrimSpace(in.LastName)
	if first == "" || last == "" {
		return models.DriverProfile{}, domain.ValidationError{Msg: "First name and last name are required"}
	}
	p := models.DriverProfile{
		FirstName: first,
		LastName:  last,
		FullName:  first + " " + last,
		DriverID:  s.driverID(in.DriverID),
		UpdatedAt: utils.NowISO(s.now()),
	}
	if err := s.Repo.SaveProfile(ctx, p); err != nil {
		return models.DriverProfile{}, domain.InternalError{Msg: "Error saving profile", Err: err}
	}
	metrics.IncProfileWrite("profile")
	utils.LogEvent(s.RequestID, "profile", "save_profile", "driver_id="+p.DriverID)
	return p, nil
}

func (s ProfileService) GetProfile(ctx context.Context) (models.DriverProfile, error) {
	p, ok, err := s.Repo.GetProfile(ctx)
	if err != nil {
		return models.DriverProfile{}, domain.InternalError{Msg: "Error loading profile", Err: err}
	}
	if !ok {
		return DefaultProfile(), nil
	}
	return p, nil
}

func (s ProfileService) SavePhoto(ctx context.Context, in PhotoInput) (models.DriverPhoto, error) {
	if strings.TrimSpace(in.Photo) == "" {
		return models.DriverPhoto{}, domain.ValidationError{Msg: "Photo data is required"}
	}
	p := models.DriverPhoto{
		Photo:      in.Photo,
		DriverID:   utils.FirstNonEmpty(strings.TrimSpace(in.DriverID), FallbackDriverID),
		UploadedAt: utils.NowISO(s.now()),
	}
	if err := s.Repo.SavePhoto(ctx, p); err != nil {
		return models.DriverPhoto{}, domain.InternalError{Msg: "Error saving photo", Err: err}
	}
	metrics.IncProfileWrite("photo")
	utils.LogEvent(s.RequestID, "profile", "save_photo", fmt.Sprintf("driver_id=%s bytes=%d", p.DriverID, len(p.Photo)))
	return p, nil
}

// GetPhoto returns nil when no photo was uploaded.
func (s ProfileService) GetPhoto(ctx context.Context) (*models.DriverPhoto, error) {
	p, ok, err := s.Repo.GetPhoto(ctx)
	if err != nil {
		return nil, domain.InternalError{Msg: "Error loading photo", Err: err}
	}
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (s ProfileService) SaveFullProfile(ctx context.Context, in FullProfileInput) (models.FullProfile, error) {
	pi := in.PersonalInfo
	if pi == nil || strings.TrimSpace(pi.FullName) == "" || strings.TrimSpace(pi.Email) == "" {
		return models.FullProfile{}, domain.ValidationError{Msg: "Personal information is required"}
	}
	p := models.FullProfile{
		PersonalInfo: pi,
		VehicleInfo:  in.VehicleInfo,
		Bio:          in.Bio,
		DriverID:     utils.FirstNonEmpty(strings.TrimSpace(in.DriverID), FallbackDriverID),
		UpdatedAt:    utils.NowISO(s.now()),
	}
	if err := s.Repo.SaveFullProfile(ctx, p); err != nil {
		return models.FullProfile{}, domain.InternalError{Msg: "Error saving profile", Err: err}
	}
	metrics.IncProfileWrite("full_profile")
	utils.LogEvent(s.RequestID, "profile", "save_full_profile", "driver_id="+p.DriverID)
	return p, nil
}

func (s ProfileService) GetFullProfile(ctx context.Context) (models.FullProfile, error) {
	p, ok, err := s.Repo.GetFullProfile(ctx)
	if err != nil {
		return models.FullProfile{}, domain.InternalError{Msg: "Error loading profile", Err: err}
	}
	if !ok {
		return DefaultFullProfile(), nil
	}
	return p, nil
}

// GetAccount stores the default account on first read.
func (s ProfileService) GetAccount(ctx context.Context) (models.DriverAccount, error) {
	a, ok, err := s.Repo.GetAccount(ctx)
	if err != nil {
		return models.DriverAccount{}, domain.InternalError{Msg: "Error loading profile", Err: err}
	}
	if ok {
		return a, nil
	}
	a = DefaultAccount()
	if err := s.Repo.SaveAccount(ctx, a); err != nil {
		return models.DriverAccount{}, domain.InternalError{Msg: "Error saving profile", Err: err}
	}
	return a, nil
}

// UpdateAccount merges the present fields and mirrors them into the signed-in user.
func (s ProfileService) UpdateAccount(ctx context.Context, upd models.DriverAccountUpdate) (models.DriverAccount, error) {
	a, err := s.GetAccount(ctx)
	if err != nil {
		return models.DriverAccount{}, err
	}
	apply := func(dst *string, v *string) {
		if v != nil {
			*dst = strings.TrimSpace(*v)
		}
	}
	apply(&a.FirstName, upd.FirstName)
	apply(&a.LastName, upd.LastName)
	apply(&a.Email, upd.Email)
	apply(&a.Phone, upd.Phone)
	apply(&a.Bio, upd.Bio)
	if upd.Photo != nil {
		a.Photo = *upd.Photo
	}
	a.FullName = AccountFullName(a.FirstName, a.LastName)
	now := utils.NowISO(s.now())
	a.UpdatedAt = now

	if err := s.Repo.SaveAccount(ctx, a); err != nil {
		return models.DriverAccount{}, domain.InternalError{Msg: "Error saving profile", Err: err}
	}
	metrics.IncProfileWrite("account")

	// The account is already persisted; a stale session user is only logged.
	if err := s.syncUser(ctx, a, now); err != nil {
		utils.LogEvent(s.RequestID, "profile", "sync_user_failed", err.Error())
	}
	utils.LogEvent(s.RequestID, "profile", "update_account", "driver_id="+a.DriverID)
	return a, nil
}

func (s ProfileService) syncUser(ctx context.Context, a models.DriverAccount, now string) error {
	if s.Sessions.Store == nil {
		return nil
	}
	sess, err := s.Sessions.Get(ctx)
	if err != nil {
		return domain.InternalError{Msg: "failed to load session", Err: err}
	}
	if sess.User == nil {
		return nil
	}
	u := *sess.User
	u.Name = a.FullName
	u.Email = utils.FirstNonEmpty(a.Email, u.Email)
	u.Phone = utils.FirstNonEmpty(a.Phone, u.Phone)
	u.Photo = utils.FirstNonEmpty(a.Photo, u.Photo)
	u.UpdatedAt = now
	if err := s.Sessions.SaveUser(ctx, u); err != nil {
		return domain.InternalError{Msg: "failed to update session user", Err: err}
	}
	return nil
}

// AccountFullName joins the names or falls back to "Driver".
func AccountFullName(first, last string) string {
	if full := strings.TrimSpace(first + " " + last); full != "" {
		return full
	}
	return "Driver"
}
