package gen

//go:generate mockgen -destination=mocks/store/mocks.go -package=storemocks github.com/ByeoliKim/star-shop/internal/store/domain CatalogRepository,ProfilesRepository,OwnershipRepository,Purchaser
//go:generate mockgen -destination=mocks/database/mocks.go -package=dbmocks github.com/ByeoliKim/star-shop/internal/pkg/database TxManager
//go:generate mockgen -destination=mocks/logging/mocks.go -package=loggingmocks github.com/ByeoliKim/star-shop/internal/pkg/logging Logger
//go:generate mockgen -destination=mocks/http/mocks.go -package=httpmocks github.com/ByeoliKim/star-shop/internal/store/infrastructure/http PurchaseService,UserStateService,CatalogService
