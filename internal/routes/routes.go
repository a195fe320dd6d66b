package routes

import (
	"github.com/arnold/lifehub-api/internal/handlers"
	"github.com/arnold/lifehub-api/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)
	auth.Post("/google", handlers.GoogleLogin)

	protected := api.Group("/", middleware.Protected())

	protected.Get("/me", handlers.GetMe)
	protected.Put("/me", handlers.UpdateProfile)
	protected.Post("/provision", handlers.Provision)

	protected.Get("/dashboard/summary", handlers.GetDashboardSummary)

	hubs := protected.Group("/hubs")
	hubs.Get("/", handlers.GetHubs)
	hubs.Post("/", handlers.CreateHub)
	hubs.Put("/:id", handlers.UpdateHub)
	hubs.Delete("/:id", handlers.DeleteHub)

	tasks := protected.Group("/tasks")
	tasks.Get("/", handlers.GetTasks)
	tasks.Post("/", handlers.CreateTask)
	tasks.Put("/:id", handlers.UpdateTask)
	tasks.Delete("/:id", handlers.DeleteTask)
	tasks.Post("/:id/toggle", handlers.ToggleTask)

	habits := protected.Group("/habits")
	habits.Get("/", handlers.GetHabits)
	habits.Post("/", handlers.CreateHabit)
	habits.Put("/:id", handlers.UpdateHabit)
	habits.Delete("/:id", handlers.DeleteHabit)
	habits.Post("/:id/toggle", handlers.ToggleHabit)

	attendance := protected.Group("/attendance")
	attendance.Get("/", handlers.GetAttendance)
	attendance.Get("/export", handlers.ExportAttendance)
	attendance.Patch("/:date", handlers.UpdateAttendance)
	attendance.Post("/:date/tasks-completed", handlers.MarkTasksCompleted)
	attendance.Post("/:date/planned-tasks", handlers.AddPlannedTask)
	protected.Post("/planned-tasks/:id/toggle", handlers.TogglePlannedTask)
	protected.Delete("/planned-tasks/:id", handlers.DeletePlannedTask)

	boards := protected.Group("/boards")
	boards.Get("/", handlers.GetBoards)
	boards.Post("/", handlers.CreateBoard)
	boards.Get("/:id", handlers.GetBoard)
	boards.Put("/:id", handlers.UpdateBoard)
	boards.Delete("/:id", handlers.DeleteBoard)
	boards.Get("/:boardId/lists", handlers.GetLists)
	boards.Post("/:boardId/lists", handlers.CreateList)

	lists := protected.Group("/lists")
	lists.Put("/:id", handlers.UpdateList)
	lists.Delete("/:id", handlers.DeleteList)
	lists.Get("/:listId/cards", handlers.GetCards)
	lists.Post("/:listId/cards", handlers.CreateCard)

	cards := protected.Group("/cards")
	cards.Put("/:id", handlers.UpdateCard)
	cards.Delete("/:id", handlers.DeleteCard)
	cards.Post("/:id/toggle", handlers.ToggleCard)
	cards.Get("/:cardId/subtasks", handlers.GetSubtasks)
	cards.Post("/:cardId/subtasks", handlers.CreateSubtask)

	subtasks := protected.Group("/subtasks")
	subtasks.Put("/:id", handlers.UpdateSubtask)
	subtasks.Delete("/:id", handlers.DeleteSubtask)

	sprints := protected.Group("/sprints")
	sprints.Get("/", handlers.GetSprints)
	sprints.Post("/", handlers.CreateSprint)
	sprints.Put("/:id", handlers.UpdateSprint)
	sprints.Delete("/:id", handlers.DeleteSprint)

	goals := protected.Group("/goals")
	goals.Get("/", handlers.GetGoals)
	goals.Post("/", handlers.CreateGoal)
	goals.Put("/:id", handlers.UpdateGoal)
	goals.Delete("/:id", handlers.DeleteGoal)

	events := protected.Group("/events")
	events.Get("/", handlers.GetEvents)
	events.Post("/", handlers.CreateEvent)
	events.Put("/:id", handlers.UpdateEvent)
	events.Delete("/:id", handlers.DeleteEvent)

	protected.Get("/credits", handlers.GetCredits)

	store := protected.Group("/store")
	store.Get("/themes", handlers.GetThemes)
	store.Post("/themes/:id/purchase", handlers.PurchaseTheme)
	store.Post("/themes/:id/activate", handlers.ActivateTheme)
}
