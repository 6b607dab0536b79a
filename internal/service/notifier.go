package service

// Notifier pushes collection change events to connected views so they refresh
// derived lists (sidebar counts, pending tasks) without polling.
type Notifier interface {
	BroadcastChange(coleccion, accion, id string)
}

// Change actions broadcast by the services.
const (
	AccionGuardado  = "guardado"
	AccionEliminado = "eliminado"
)

type noopNotifier struct{}

func (noopNotifier) BroadcastChange(string, string, string) {}

// NoopNotifier stands in when no hub is wired, e.g. in tests.
var NoopNotifier Notifier = noopNotifier{}
