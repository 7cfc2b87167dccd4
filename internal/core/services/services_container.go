package services

import (
	portsrepo "github.com/SscSPs/cuzdan_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/cuzdan_backend/internal/core/ports/services"
	"github.com/SscSPs/cuzdan_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, uowFactory portsrepo.UnitOfWorkFactory) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.GoogleOAuth = NewGoogleOAuthService(cfg)
	container.Auth = NewAuthService(cfg, uowFactory, NewCategorySeeder(), WithGoogleOAuth(container.GoogleOAuth))
	container.User = NewUserService(uowFactory)
	container.Account = NewAccountService(uowFactory)
	container.Category = NewCategoryService(uowFactory)
	container.Transaction = NewTransactionService(uowFactory)
	container.Budget = NewBudgetService(uowFactory)
	container.Goal = NewGoalService(uowFactory)
	container.Recurring = NewRecurringService(uowFactory)
	container.Dashboard = NewDashboardService(uowFactory)
	container.Reporting = NewReportingService(uowFactory)

	return container
}
