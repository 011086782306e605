package services

// ServiceContainer aggregates the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Folio     FolioSvcFacade
	Tax       TaxSvcFacade
	Rate      RateSvcFacade
	Assistant AssistantSvcFacade
}
