package postgres

// Catalog объединяет товары и корты для чтения каталога сервисами заказов
type Catalog struct {
	*ProductRepository
	*CourtRepository
}

// NewCatalog создает Catalog поверх одного подключения
func NewCatalog(db DBTX) *Catalog {
	return &Catalog{
		ProductRepository: NewProductRepository(db),
		CourtRepository:   NewCourtRepository(db),
	}
}
