// Package currency converts canonical INR amounts for display. Only the
// display preference is persisted; stored prices never leave INR.
package currency

import (
	"errors"
	"math"
	"strconv"
	"strings"
	"sync"

	"storefront/internal/store"
)

const (
	INR = "INR"
	USD = "USD"
)

var ErrUnsupported = errors.New("unsupported currency")

type Manager struct {
	mu        sync.Mutex
	store     *store.Store
	inrPerUSD float64
	code      string
}

func NewManager(st *store.Store, inrPerUSD float64) *Manager {
	m := &Manager{store: st, inrPerUSD: inrPerUSD, code: INR}
	var saved string
	if st.Get(store.KeyCurrency, &saved) && (saved == INR || saved == USD) {
		m.code = saved
	}
	return m
}

// Code returns the active display currency.
func (m *Manager) Code() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.code
}

// Set switches the display currency and persists the preference.
func (m *Manager) Set(code string) error {
	if code != INR && code != USD {
		return ErrUnsupported
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	m.code = code
	m.store.Set(store.KeyCurrency, code)
	return nil
}

// Toggle flips between the two supported currencies.
func (m *Manager) Toggle() string {
	m.mu.Lock()
	next := USD
	if m.code == USD {
		next = INR
	}
	m.code = next
	m.store.Set(store.KeyCurrency, next)
	m.mu.Unlock()
	return next
}

// Convert maps a canonical INR amount into the display currency. INR is
// identity; USD applies the fixed rate and rounds to two decimals.
func (m *Manager) Convert(amountINR float64) float64 {
	if m.Code() == INR {
		return amountINR
	}
	return math.Round(amountINR/m.inrPerUSD*100) / 100
}

// Format renders the amount with the display currency's symbol, digit
// grouping and fraction digits: zero for INR, two for USD.
func (m *Manager) Format(amountINR float64) string {
	amount := m.Convert(amountINR)
	if m.Code() == INR {
		return "₹" + groupIndian(int64(math.Round(amount)))
	}
	return "$" + groupWestern(amount)
}

// groupIndian renders 1234567 as "12,34,567": the last three digits form
// one group, everything before them groups in twos.
func groupIndian(n int64) string {
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return sign + s
	}
	head, tail := s[:len(s)-3], s[len(s)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	if head != "" {
		groups = append([]string{head}, groups...)
	}
	return sign + strings.Join(append(groups, tail), ",")
}

// groupWestern renders with two fraction digits and groups of three.
func groupWestern(v float64) string {
	s := strconv.FormatFloat(v, 'f', 2, 64)
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}
	dot := strings.IndexByte(s, '.')
	intPart, frac := s[:dot], s[dot:]
	var groups []string
	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}
	groups = append([]string{intPart}, groups...)
	return sign + strings.Join(groups, ",") + frac
}
