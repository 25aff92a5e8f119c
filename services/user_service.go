package services

import (
	"time"

	"github.com/Brandon0902/HumanSport/config"
	"github.com/Brandon0902/HumanSport/models"
)

type UserUpdateInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Birthdate string `json:"birthdate"` // sent as YYYY-MM-DD
	Phone     string `json:"phone"`
	Role      string `json:"role"`
	Photo     string `json:"photo"`
}

func CreateUser(user *models.User) error {
	return config.DB.Create(user).Error
}

func FindUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, "email = ?", email).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func FindUserByID(id uint) (*models.User, error) {
	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UserWithMembership annotates a listed user with the derived membership
// state; Membership stays nil for roles that never hold one.
type UserWithMembership struct {
	models.User
	Membership *MembershipStatus `json:"membershipInfo,omitempty"`
}

// ListUsers filters by role and status when given, and annotates active
// member-role users with their computed membership info.
func ListUsers(role, status string) ([]UserWithMembership, error) {
	query := config.DB
	if role != "" {
		query = query.Where("role = ?", role)
	}
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var users []models.User
	if err := query.Find(&users).Error; err != nil {
		return nil, err
	}

	out := make([]UserWithMembership, 0, len(users))
	for _, u := range users {
		entry := UserWithMembership{User: u}
		if u.Role == models.RoleMember && u.Status == models.StatusActive {
			info, err := ResolveMembership(u.ID)
			if err == nil {
				entry.Membership = &info
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

// UpdateUserByEmail applies a partial merge: only the fields present in the
// input overwrite the stored record.
func UpdateUserByEmail(email string, input UserUpdateInput) (*models.User, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil, err
	}

	if input.FirstName != "" {
		user.FirstName = input.FirstName
	}
	if input.LastName != "" {
		user.LastName = input.LastName
	}
	if input.Birthdate != "" {
		if birthdate, err := time.Parse("2006-01-02", input.Birthdate); err == nil {
			user.Birthdate = birthdate
		}
	}
	if input.Phone != "" {
		user.Phone = input.Phone
	}
	if input.Role != "" {
		user.Role = input.Role
	}
	if input.Photo != "" {
		user.Photo = input.Photo
	}

	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

func SetUserPassword(email, hashed string) (*models.User, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil, err
	}
	user.Password = hashed
	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// DeactivateUser soft-deletes: the row stays, only status flips. There is no
// exposed transition back to active.
func DeactivateUser(email string) (*models.User, error) {
	user, err := FindUserByEmail(email)
	if err != nil {
		return nil, err
	}
	user.Status = models.StatusInactive
	if err := config.DB.Save(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}
