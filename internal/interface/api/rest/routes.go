package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth     = RouteApiV1 + "/auth"
	RouteLogin    = RouteAuth + "/login"
	RouteLogout   = RouteAuth + "/logout"
	RouteRegister = RouteAuth + "/register"
	RouteSession  = RouteAuth + "/session"

	// dashboard + files
	RouteDashboard     = RouteApiV1 + "/dashboard"
	RouteFiles         = RouteApiV1 + "/files"
	RouteFilesCategory = RouteFiles + "/category/:category"
	RouteFile          = RouteFiles + "/:file_id"
	RouteFileUpload    = RouteFiles + "/upload"
	RouteFilePreview   = RouteFile + "/preview"
	RouteFileDownload  = RouteFile + "/download"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)

// LoginRedirect is where the SPA sends the user when the guard declines.
const LoginRedirect = "/login"
