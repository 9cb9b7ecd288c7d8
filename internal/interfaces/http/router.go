package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/santiyepro/santiye-api/internal/application/auth"
	apphakedis "github.com/santiyepro/santiye-api/internal/application/hakedis"
	"github.com/santiyepro/santiye-api/internal/application/ledger"
	"github.com/santiyepro/santiye-api/internal/application/structure"
	"github.com/santiyepro/santiye-api/internal/application/usecase"
	"github.com/santiyepro/santiye-api/internal/domain/entity"
	"github.com/santiyepro/santiye-api/internal/domain/repository"
)

// RouterDeps router bağımlılıkları.
type RouterDeps struct {
	AuthUC      *auth.AuthUseCase
	SantiyeUC   *usecase.SantiyeUseCase
	BlokUC      *usecase.BlokUseCase
	DepoUC      *usecase.DepoUseCase
	MalzemeUC   *usecase.MalzemeUseCase
	EksiklikUC  *usecase.EksiklikUseCase
	PersonelUC  *usecase.PersonelUseCase
	SozlesmeUC  *usecase.SozlesmeUseCase
	HakedisUC   *apphakedis.HakedisUseCase
	StokDefteri *ledger.StokDefteriUseCase
	Yapi        *structure.Manager
	HareketRepo repository.HareketRepository
	JWTSecret   string
}

// Router API rotalarını kaydeder.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (açık)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Korumalı rotalar (Bearer token gerekli)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Yapı düzenleme ve silme işlemleri saha yönetimine,
	// stok işlemleri depocuya da açıktır.
	yonetim := RequireRole(entity.RoleAdmin, entity.RoleSantiyeSefi)

	// Şantiyeler
	santiyeler := protected.Group("/santiyeler")
	santiyeHandler := NewSantiyeHandler(deps.SantiyeUC)
	santiyeler.Post("/", yonetim, santiyeHandler.Create)
	santiyeler.Get("/", santiyeHandler.List)
	santiyeler.Get("/:id", santiyeHandler.GetByID)
	santiyeler.Put("/:id", yonetim, santiyeHandler.Update)
	santiyeler.Delete("/:id", RequireRole(entity.RoleAdmin), santiyeHandler.Delete)

	// Bloklar + yapı editörü
	blokHandler := NewBlokHandler(deps.BlokUC, deps.Yapi)
	santiyeler.Post("/:id/bloklar", yonetim, blokHandler.Create)
	santiyeler.Get("/:id/bloklar", blokHandler.List)
	bloklar := protected.Group("/bloklar")
	bloklar.Get("/:id", blokHandler.GetByID)
	bloklar.Put("/:id", yonetim, blokHandler.Update)
	bloklar.Delete("/:id", RequireRole(entity.RoleAdmin), blokHandler.Delete)
	bloklar.Post("/:id/katlar", yonetim, blokHandler.AddKat)
	bloklar.Delete("/:id/katlar/:katIndex", yonetim, blokHandler.RemoveKat)
	bloklar.Post("/:id/katlar/:katIndex/daireler", yonetim, blokHandler.AddDaire)
	bloklar.Delete("/:id/katlar/:katIndex/daireler/:daireIndex", yonetim, blokHandler.RemoveDaire)
	bloklar.Put("/:id/katlar/:katIndex/daireler/:daireIndex", yonetim, blokHandler.RenameDaire)
	bloklar.Post("/:id/kaydet", yonetim, blokHandler.Kaydet)
	bloklar.Post("/:id/vazgec", yonetim, blokHandler.Vazgec)

	// Depolar
	depoHandler := NewDepoHandler(deps.DepoUC)
	santiyeler.Post("/:id/depolar", yonetim, depoHandler.Create)
	santiyeler.Get("/:id/depolar", depoHandler.List)
	depolar := protected.Group("/depolar")
	depolar.Get("/:id", depoHandler.GetByID)
	depolar.Put("/:id", yonetim, depoHandler.Update)
	depolar.Delete("/:id", RequireRole(entity.RoleAdmin), depoHandler.Delete)

	// Malzemeler + kritik stok
	malzemeHandler := NewMalzemeHandler(deps.MalzemeUC)
	depolar.Post("/:id/malzemeler", malzemeHandler.Create)
	depolar.Get("/:id/malzemeler", malzemeHandler.List)
	santiyeler.Get("/:id/kritik-stok", malzemeHandler.ListKritik)
	malzemeler := protected.Group("/malzemeler")
	malzemeler.Get("/:id", malzemeHandler.GetByID)
	malzemeler.Put("/:id", malzemeHandler.Update)
	malzemeler.Delete("/:id", yonetim, malzemeHandler.Delete)

	// Stok hareketleri (defter)
	hareketHandler := NewHareketHandler(deps.StokDefteri, deps.HareketRepo)
	malzemeler.Post("/:id/hareketler", hareketHandler.Create)
	malzemeler.Get("/:id/hareketler", hareketHandler.List)
	malzemeler.Put("/:id/hareketler/:hareketId", hareketHandler.Update)
	malzemeler.Delete("/:id/hareketler/:hareketId", hareketHandler.Delete)
	malzemeler.Post("/:id/yeniden-hesapla", yonetim, hareketHandler.Recompute)

	// Eksiklikler
	eksiklikHandler := NewEksiklikHandler(deps.EksiklikUC)
	bloklar.Post("/:id/eksiklikler", eksiklikHandler.Create)
	bloklar.Get("/:id/eksiklikler", eksiklikHandler.List)
	eksiklikler := protected.Group("/eksiklikler")
	eksiklikler.Get("/:id", eksiklikHandler.GetByID)
	eksiklikler.Put("/:id", eksiklikHandler.Update)
	eksiklikler.Delete("/:id", yonetim, eksiklikHandler.Delete)

	// Personel + puantaj
	personelHandler := NewPersonelHandler(deps.PersonelUC)
	santiyeler.Post("/:id/personeller", yonetim, personelHandler.Create)
	santiyeler.Get("/:id/personeller", personelHandler.List)
	personeller := protected.Group("/personeller")
	personeller.Get("/:id", personelHandler.GetByID)
	personeller.Put("/:id", yonetim, personelHandler.Update)
	personeller.Delete("/:id", RequireRole(entity.RoleAdmin), personelHandler.Delete)
	personeller.Post("/:id/puantaj", yonetim, personelHandler.KaydetPuantaj)
	personeller.Get("/:id/puantaj", personelHandler.AylikPuantaj)

	// Sözleşmeler
	sozlesmeHandler := NewSozlesmeHandler(deps.SozlesmeUC)
	santiyeler.Post("/:id/sozlesmeler", yonetim, sozlesmeHandler.Create)
	santiyeler.Get("/:id/sozlesmeler", sozlesmeHandler.List)
	sozlesmeler := protected.Group("/sozlesmeler")
	sozlesmeler.Get("/:id", sozlesmeHandler.GetByID)
	sozlesmeler.Put("/:id", yonetim, sozlesmeHandler.Update)
	sozlesmeler.Delete("/:id", RequireRole(entity.RoleAdmin), sozlesmeHandler.Delete)

	// Hakedişler
	hakedisHandler := NewHakedisHandler(deps.HakedisUC)
	santiyeler.Post("/:id/hakedisler", yonetim, hakedisHandler.Create)
	santiyeler.Get("/:id/hakedisler", hakedisHandler.List)
	hakedisler := protected.Group("/hakedisler")
	hakedisler.Get("/:id", hakedisHandler.GetByID)
	hakedisler.Put("/:id", yonetim, hakedisHandler.Update)
	hakedisler.Delete("/:id", RequireRole(entity.RoleAdmin), hakedisHandler.Delete)
	hakedisler.Get("/:id/pdf", hakedisHandler.PDF)
}
