package services

import (
	portsrepo "github.com/stayfolio/hotel_pms_app/internal/core/ports/repositories"
	portssvc "github.com/stayfolio/hotel_pms_app/internal/core/ports/services"
)

// NewServiceContainer wires the service layer from the repository implementations.
// The assistant is optional; it is only wired when a model client is configured.
func NewServiceContainer(
	folioRepo portsrepo.FolioRepositoryWithTx,
	taxRepo portsrepo.TaxRepositoryFacade,
	rateRepo portsrepo.RateRepositoryFacade,
	model portssvc.ModelClient,
	assistantCfg AssistantConfig,
) *portssvc.ServiceContainer {
	taxSvc := NewTaxService(taxRepo)
	rateSvc := NewRateService(rateRepo)
	folioSvc := NewFolioService(folioRepo, taxSvc, rateSvc)

	container := &portssvc.ServiceContainer{
		Folio: folioSvc,
		Tax:   taxSvc,
		Rate:  rateSvc,
	}
	if model != nil {
		tools := []portssvc.Tool{NewFolioLookupTool(folioSvc)}
		container.Assistant = NewAssistantService(model, tools, assistantCfg)
	}
	return container
}
