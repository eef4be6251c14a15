package api

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"weatheractivity.app/internal/core/dashboard"
	"weatheractivity.app/internal/core/weather"
)

func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"round": weather.Round,
		"https": weather.EnsureHTTPS,
	}
}

// showDashboard handles GET / requests: ?location= searches, ?locate=1 uses the
// configured position, otherwise only the saved locations are shown.
func (s *HTTPServerAdapter) showDashboard(c *gin.Context) {
	ctx := c.Request.Context()

	var view *dashboard.View
	switch {
	case c.Query("location") != "":
		view = s.dashboardUseCase.Search(ctx, c.Query("location"))
	case c.Query("locate") != "":
		view = s.dashboardUseCase.Locate(ctx)
	default:
		view = s.dashboardUseCase.Home(ctx)
	}
	if view.Rule != "" {
		s.metricsCollector.RecordSuggestion(view.Rule)
	}

	c.HTML(http.StatusOK, "dashboard.html", view)
}
