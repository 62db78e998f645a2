package journal

import "fmt"

// User facing messages.
const (
	MsgTaskAdded       = "Tarea añadida"
	MsgTaskEmpty       = "La tarea no puede estar vacía"
	MsgBadSymbol       = "Símbolo no válido"
	MsgTasksMigrated   = "Tareas migradas al día siguiente"
	MsgNothingToClear  = "No hay tareas completadas para eliminar"
	MsgEventAdded      = "Evento añadido"
	MsgEventIncomplete = "El evento debe tener un título y fecha"
	MsgBadDate         = "Fecha no válida"
	MsgEmotionAdded    = "Emoción registrada"
	MsgEmotionMissing  = "Selecciona una emoción"
	MsgBadIntensity    = "La intensidad debe estar entre 0 y 5"
	MsgSaveFailed      = "No se pudo guardar"
)

// ClearPrompt asks to confirm removing n completed tasks.
func ClearPrompt(n int) string {
	return fmt.Sprintf("¿Estás seguro de que quieres eliminar %d tareas completadas?", n)
}

// ClearedMessage reports n removed tasks.
func ClearedMessage(n int) string {
	return fmt.Sprintf("%d tareas eliminadas", n)
}
