package internal

import (
	"net/http"
	"photobooth/internal/controllers"
	"photobooth/internal/providers"
)

func InitRoutes(apiController *controllers.ApiController) providers.RouterProviderInterface {
	routers := providers.NewRouterProvider()

	routers.Get("/camera", http.HandlerFunc(apiController.GetCamera))
	routers.Post("/camera/start", http.HandlerFunc(apiController.StartCamera))
	routers.Post("/camera/stop", http.HandlerFunc(apiController.StopCamera))
	routers.Post("/camera/toggle", http.HandlerFunc(apiController.ToggleCamera))
	routers.Post("/camera/flip", http.HandlerFunc(apiController.FlipCamera))
	routers.Post("/camera/mirror", http.HandlerFunc(apiController.SetMirror))

	routers.Get("/settings", http.HandlerFunc(apiController.GetSettings))
	routers.Post("/settings", http.HandlerFunc(apiController.UpdateSettings))
	routers.Get("/overlay", http.HandlerFunc(apiController.GetOverlay))

	routers.Post("/session/start", http.HandlerFunc(apiController.StartSession))
	routers.Post("/session/abort", http.HandlerFunc(apiController.AbortSession))
	routers.Post("/session/new", http.HandlerFunc(apiController.NewSession))
	routers.Get("/session/status", http.HandlerFunc(apiController.GetStatus))
	routers.Get("/session/stats", http.HandlerFunc(apiController.GetStats))

	routers.Get("/photos", http.HandlerFunc(apiController.GetPhotos))
	routers.Get("/photos/image", http.HandlerFunc(apiController.GetPhotoImage))

	routers.Get("/editor", http.HandlerFunc(apiController.GetEditor))
	routers.Post("/editor/open", http.HandlerFunc(apiController.OpenEditor))
	routers.Post("/editor/close", http.HandlerFunc(apiController.CloseEditor))
	routers.Post("/editor/sticker", http.HandlerFunc(apiController.AddSticker))
	routers.Post("/editor/move", http.HandlerFunc(apiController.MoveSticker))
	routers.Post("/editor/rotate", http.HandlerFunc(apiController.RotateSticker))
	routers.Post("/editor/resize", http.HandlerFunc(apiController.ResizeSticker))
	routers.Post("/editor/remove", http.HandlerFunc(apiController.RemoveSticker))
	routers.Post("/editor/reset", http.HandlerFunc(apiController.ResetEditor))
	routers.Post("/editor/enhance", http.HandlerFunc(apiController.AutoEnhance))
	routers.Post("/editor/save", http.HandlerFunc(apiController.SaveEdited))
	routers.Post("/editor/apply-all", http.HandlerFunc(apiController.ApplyStickersToAll))
	routers.Get("/editor/preview", http.HandlerFunc(apiController.EditorPreview))

	routers.Get("/export/photo", http.HandlerFunc(apiController.ExportPhoto))
	routers.Get("/export/collage", http.HandlerFunc(apiController.ExportCollage))
	routers.Get("/collage", http.HandlerFunc(apiController.GetCollage))

	routers.Get("/sessions", http.HandlerFunc(apiController.GetSavedSessions))
	routers.Post("/sessions/save", http.HandlerFunc(apiController.SaveAllPhotos))
	routers.Get("/history", http.HandlerFunc(apiController.GetHistory))
	routers.Get("/share", http.HandlerFunc(apiController.GetShare))
	return routers
}
