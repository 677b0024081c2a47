package vitals

import "time"

// Reading es una medición puntual. Es inmutable una vez construida.
type Reading struct {
	SystolicPressure  int     // mmHg
	DiastolicPressure int     // mmHg
	HeartRate         int     // lpm
	Temperature       float64 // °C
	OxygenSaturation  int     // %
}

// Record es una lectura registrada por enfermería para un paciente.
type Record struct {
	ID        string
	PatientID string
	NurseID   string

	Reading         Reading
	RespiratoryRate int
	Weight          *float64 // kg, opcional
	Height          *float64 // cm, opcional
	Notes           string

	RecordedAt time.Time

	// Anomalies no se persiste: se recalcula al leer.
	Anomalies []AnomalyLabel
}

// Condition resume el estado del paciente en el tablero de monitoreo.
type Condition string

const (
	ConditionStable   Condition = "Stable"
	ConditionCritical Condition = "Critical"
)

// MonitoredPatient es la última lectura conocida de un paciente.
type MonitoredPatient struct {
	PatientID  string
	Latest     Record
	Condition  Condition
	AlertCount int
}
