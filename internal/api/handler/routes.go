package handler

import (
	"net/http"

	"github.com/martonai/revenue-dashboard-api/internal/api/handler/router"
	"github.com/martonai/revenue-dashboard-api/internal/usecases/authenticating"
	"github.com/martonai/revenue-dashboard-api/internal/usecases/customering"
	"github.com/martonai/revenue-dashboard-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/report",
			Method:  http.MethodGet,
			Handler: GetDashboardReport(service),
		},
	}
}

func Customers(service customering.Customering) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/customers",
			Method:  http.MethodGet,
			Handler: GetCustomerList(service),
		},
		{
			Path:    "/v1/churned",
			Method:  http.MethodGet,
			Handler: GetChurnedCustomers(service),
		},
	}
}
