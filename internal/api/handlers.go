package api

import (
	"go.uber.org/zap"

	"github.com/uniwell/mindcare/internal/services"
)

// HandlerBundle holds every service the routes need.
type HandlerBundle struct {
	Sessions    *services.SessionService
	Assessments *services.AssessmentService
	Scheduler   *services.SchedulerService
	Journal     *services.JournalService
	Habits      *services.HabitService
	Community   *services.CommunityService
	Resources   *services.ResourceService
	Analytics   *services.AnalyticsService
	Logger      *zap.Logger
}
