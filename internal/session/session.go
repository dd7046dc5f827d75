// Package session owns the active identity: login, registration, the
// persisted session projection, and the session user's profile and
// address book. At most one session is active at a time.
package session

import (
	"errors"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"storefront/internal/models"
	"storefront/internal/store"
)

var (
	ErrInvalidPassword = errors.New("invalid password")
	ErrDeactivated     = errors.New("account is deactivated")
	ErrNotRegistered   = errors.New("user not found, please register first")
	ErrEmailTaken      = errors.New("email already registered")
	ErrMissingFields   = errors.New("all fields are required")
	ErrNoUserSession   = errors.New("no user session")
	ErrAddressNotFound = errors.New("address not found")
	ErrStorage         = errors.New("storage write failed")
)

type Manager struct {
	store         *store.Store
	adminEmail    string
	adminPassword string
}

func NewManager(st *store.Store, adminEmail, adminPassword string) *Manager {
	return &Manager{store: st, adminEmail: adminEmail, adminPassword: adminPassword}
}

// Login authenticates against the admin credential pair first, then the
// user table. Email matching is exact, as stored. On success the session
// projection is persisted and returned.
func (m *Manager) Login(email, password string) (models.Session, error) {
	email = strings.TrimSpace(email)

	if email == m.adminEmail && password == m.adminPassword {
		sess := models.Session{
			ID:    "admin",
			Email: m.adminEmail,
			Name:  "Admin",
			Role:  models.RoleAdmin,
		}
		if !m.store.Set(store.KeyAuth, sess) {
			return models.Session{}, ErrStorage
		}
		return sess, nil
	}

	var users []models.User
	m.store.Get(store.KeyUsers, &users)
	for _, u := range users {
		if u.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
			return models.Session{}, ErrInvalidPassword
		}
		if !u.IsActive {
			return models.Session{}, ErrDeactivated
		}
		sess := u.Project()
		if !m.store.Set(store.KeyAuth, sess) {
			return models.Session{}, ErrStorage
		}
		return sess, nil
	}

	return models.Session{}, ErrNotRegistered
}

// Register creates the user and immediately logs them in, so a successful
// registration always ends with an active session.
func (m *Manager) Register(name, email, password, phone string) (models.Session, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	phone = strings.TrimSpace(phone)
	if name == "" || email == "" || password == "" {
		return models.Session{}, ErrMissingFields
	}

	var users []models.User
	m.store.Get(store.KeyUsers, &users)
	for _, u := range users {
		if u.Email == email {
			return models.Session{}, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Session{}, err
	}

	user := models.User{
		ID:           models.NewID("user_"),
		Email:        email,
		Name:         name,
		PasswordHash: string(hash),
		Phone:        phone,
		Addresses:    []models.Address{},
		IsActive:     true,
		CreatedAt:    time.Now().UTC(),
	}
	users = append(users, user)
	if !m.store.Set(store.KeyUsers, users) {
		return models.Session{}, ErrStorage
	}

	sess := user.Project()
	if !m.store.Set(store.KeyAuth, sess) {
		return models.Session{}, ErrStorage
	}
	return sess, nil
}

// Logout clears the session key and nothing else.
func (m *Manager) Logout() {
	m.store.Remove(store.KeyAuth)
}

// Current returns the active session, if any.
func (m *Manager) Current() (models.Session, bool) {
	var sess models.Session
	if !m.store.Get(store.KeyAuth, &sess) {
		return models.Session{}, false
	}
	return sess, true
}

// ProfileUpdate lists the fields a user may change. Nil means unchanged;
// defaults are resolved here, once, not at read sites.
type ProfileUpdate struct {
	Name      *string
	Phone     *string
	Addresses *[]models.Address
}

// UpdateProfile merges the update into the stored user record and refreshes
// the persisted session projection. Admin and anonymous sessions have no
// backing user record, so the call is a no-op for them.
func (m *Manager) UpdateProfile(update ProfileUpdate) (models.Session, error) {
	sess, ok := m.Current()
	if !ok || sess.Role != models.RoleUser {
		return models.Session{}, ErrNoUserSession
	}

	var users []models.User
	m.store.Get(store.KeyUsers, &users)
	for i := range users {
		if users[i].ID != sess.ID {
			continue
		}
		if update.Name != nil {
			users[i].Name = strings.TrimSpace(*update.Name)
		}
		if update.Phone != nil {
			users[i].Phone = strings.TrimSpace(*update.Phone)
		}
		if update.Addresses != nil {
			users[i].Addresses = *update.Addresses
		}
		if !m.store.Set(store.KeyUsers, users) {
			return models.Session{}, ErrStorage
		}
		refreshed := users[i].Project()
		if !m.store.Set(store.KeyAuth, refreshed) {
			return models.Session{}, ErrStorage
		}
		return refreshed, nil
	}

	return models.Session{}, ErrNoUserSession
}

// AddAddress appends a new address to the session user's address book.
// The display string is derived from the four component fields.
func (m *Manager) AddAddress(street, city, state, pincode string) (models.Address, error) {
	sess, ok := m.Current()
	if !ok || sess.Role != models.RoleUser {
		return models.Address{}, ErrNoUserSession
	}

	addr := models.Address{
		ID:      models.NewID("addr_"),
		Street:  strings.TrimSpace(street),
		City:    strings.TrimSpace(city),
		State:   strings.TrimSpace(state),
		Pincode: strings.TrimSpace(pincode),
	}
	if addr.Street == "" || addr.City == "" || addr.State == "" || addr.Pincode == "" {
		return models.Address{}, ErrMissingFields
	}
	addr.DeriveFull()

	addresses := append(append([]models.Address{}, sess.Addresses...), addr)
	if _, err := m.UpdateProfile(ProfileUpdate{Addresses: &addresses}); err != nil {
		return models.Address{}, err
	}
	return addr, nil
}

// EditAddress replaces the component fields of an existing address and
// re-derives its display string.
func (m *Manager) EditAddress(id, street, city, state, pincode string) (models.Address, error) {
	sess, ok := m.Current()
	if !ok || sess.Role != models.RoleUser {
		return models.Address{}, ErrNoUserSession
	}

	addresses := append([]models.Address{}, sess.Addresses...)
	for i := range addresses {
		if addresses[i].ID != id {
			continue
		}
		addresses[i].Street = strings.TrimSpace(street)
		addresses[i].City = strings.TrimSpace(city)
		addresses[i].State = strings.TrimSpace(state)
		addresses[i].Pincode = strings.TrimSpace(pincode)
		if addresses[i].Street == "" || addresses[i].City == "" || addresses[i].State == "" || addresses[i].Pincode == "" {
			return models.Address{}, ErrMissingFields
		}
		addresses[i].DeriveFull()
		if _, err := m.UpdateProfile(ProfileUpdate{Addresses: &addresses}); err != nil {
			return models.Address{}, err
		}
		return addresses[i], nil
	}

	return models.Address{}, ErrAddressNotFound
}

// DeleteAddress removes an address from the session user's address book.
func (m *Manager) DeleteAddress(id string) error {
	sess, ok := m.Current()
	if !ok || sess.Role != models.RoleUser {
		return ErrNoUserSession
	}

	addresses := make([]models.Address, 0, len(sess.Addresses))
	found := false
	for _, a := range sess.Addresses {
		if a.ID == id {
			found = true
			continue
		}
		addresses = append(addresses, a)
	}
	if !found {
		return ErrAddressNotFound
	}
	_, err := m.UpdateProfile(ProfileUpdate{Addresses: &addresses})
	return err
}
