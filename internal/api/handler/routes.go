package handler

import (
	"net/http"

	"github.com/vfg2006/control-tower-api/infrastructure/repository"
	"github.com/vfg2006/control-tower-api/internal/api/handler/router"
	"github.com/vfg2006/control-tower-api/internal/domain"
	"github.com/vfg2006/control-tower-api/internal/usecases/alerting"
	"github.com/vfg2006/control-tower-api/internal/usecases/authenticating"
	"github.com/vfg2006/control-tower-api/internal/usecases/clinics"
	"github.com/vfg2006/control-tower-api/internal/usecases/planning"
	"github.com/vfg2006/control-tower-api/internal/usecases/reporting"
	"github.com/vfg2006/control-tower-api/pkg/middleware"
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

func Plans(service planning.PlanResolver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/plans",
			Method:      http.MethodGet,
			Handler:     ListPlanRulebooks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/plans/:tier/rulebook",
			Method:      http.MethodGet,
			Handler:     GetPlanRulebook(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/plans/:tier/sections",
			Method:      http.MethodGet,
			Handler:     GetPlanSections(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/sections/min-plan",
			Method:      http.MethodGet,
			Handler:     GetMinPlanTable(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me/sections/:section/access",
			Method:      http.MethodGet,
			Handler:     CheckMySectionAccess(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Clinics(service clinics.ClinicService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clinics",
			Method:      http.MethodGet,
			Handler:     ClinicList(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/clinics/:id",
			Method:      http.MethodGet,
			Handler:     GetClinic(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/clinics/:id",
			Method:      http.MethodPut,
			Handler:     UpdateClinic(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func KpiSnapshots(snapshotRepo repository.KpiSnapshotRepository, clinicRepo repository.ClinicRepository, resolver planning.PlanResolver) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/clinics/:id/kpi/snapshots",
			Method:      http.MethodPost,
			Handler:     IngestKpiSnapshot(snapshotRepo, clinicRepo),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:    "/v1/clinics/:id/kpi/latest",
			Method:  http.MethodGet,
			Handler: GetLatestKpiSnapshot(snapshotRepo),
			Middlewares: []func(http.Handler) http.Handler{
				middleware.AllRoles(),
				middleware.RequirePlanSection(resolver, domain.SectionDashboard),
			},
		},
	}
}

func Alerts(service alerting.Alerter, resolver planning.PlanResolver) []router.Route {
	sectionGuard := middleware.RequirePlanSection(resolver, domain.SectionDashboard)

	return []router.Route{
		{
			Path:        "/v1/clinics/:id/alerts",
			Method:      http.MethodGet,
			Handler:     GetClinicAlerts(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(), sectionGuard},
		},
		{
			Path:        "/v1/clinics/:id/alerts/summary",
			Method:      http.MethodGet,
			Handler:     GetAlertSummary(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(), sectionGuard},
		},
		{
			Path:        "/v1/clinics/:id/alerts/:alert_id/resolve",
			Method:      http.MethodPost,
			Handler:     ResolveAlert(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(), sectionGuard},
		},
		{
			Path:        "/v1/clinics/:id/alerts/:alert_id/dismiss",
			Method:      http.MethodPost,
			Handler:     DismissAlert(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(), sectionGuard},
		},
		{
			Path:        "/v1/clinics/:id/alerts/:alert_id/rearm",
			Method:      http.MethodPost,
			Handler:     RearmAlert(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles(), sectionGuard},
		},
	}
}

func Reports(service reporting.Reporter, resolver planning.PlanResolver) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clinics/:id/reports/executive",
			Method:  http.MethodGet,
			Handler: GetExecutiveReportPlan(service),
			Middlewares: []func(http.Handler) http.Handler{
				middleware.AllRoles(),
				middleware.RequirePlanSection(resolver, domain.SectionRelatorios),
			},
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
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:        "/v1/users/:id/generate-password",
			Method:      http.MethodPost,
			Handler:     GeneratePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/change-password",
			Method:      http.MethodPost,
			Handler:     ChangePassword(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func User(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/users",
			Method:      http.MethodGet,
			Handler:     ListUsers(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users",
			Method:      http.MethodPost,
			Handler:     CreateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodGet,
			Handler:     GetUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id",
			Method:      http.MethodPut,
			Handler:     UpdateUser(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// UserClinics retorna as rotas para gerenciamento de clínicas vinculadas a usuários
func UserClinics(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/me/clinics",
			Method:      http.MethodGet,
			Handler:     GetUserClinics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/users/:id/clinics/link",
			Method:      http.MethodPost,
			Handler:     LinkUserClinics(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/users/:id/clinics/:clinic_id",
			Method:      http.MethodDelete,
			Handler:     UnlinkUserClinic(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrSupervisor()},
		},
	}
}
