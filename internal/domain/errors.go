package domain

import "errors"

// Alan (domain) hataları; dış bağımlılık yok.
var (
	ErrNotFound           = errors.New("kayıt bulunamadı")
	ErrUserNotFound       = errors.New("kullanıcı bulunamadı")
	ErrEmailAlreadyExists = errors.New("bu e-posta zaten kayıtlı")
	ErrInvalidInput       = errors.New("geçersiz giriş")
	ErrUnauthorized       = errors.New("yetkisiz erişim")
	ErrForbidden          = errors.New("erişim reddedildi")

	// Yapı editörü kuralları.
	ErrDuplicateSingleton  = errors.New("bu kat tipinden blokta zaten var") // zemin ve çatı tekil
	ErrDuplicateUnitNumber = errors.New("daire numarası bu katta zaten kullanılıyor")
	ErrIncompleteUnit      = errors.New("numarası boş daire var")
	ErrCommitInFlight      = errors.New("bu blok için kayıt zaten sürüyor")

	// Stok defteri kuralları.
	ErrNegativeStock = errors.New("stok negatife düşemez")
)
