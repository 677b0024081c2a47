package vitals

import (
	"errors"
	"fmt"
)

// Kind identifica un signo vital dentro de la tabla de umbrales.
type Kind string

const (
	KindSystolic         Kind = "systolic"
	KindDiastolic        Kind = "diastolic"
	KindTemperature      Kind = "temperature"
	KindHeartRate        Kind = "heart_rate"
	KindOxygenSaturation Kind = "oxygen_saturation"
)

// AnomalyLabel es la etiqueta que se devuelve cuando un valor queda fuera de rango.
type AnomalyLabel string

const (
	LabelSystolic         AnomalyLabel = "Abnormal Systolic BP"
	LabelDiastolic        AnomalyLabel = "Abnormal Diastolic BP"
	LabelTemperature      AnomalyLabel = "Abnormal Temperature"
	LabelHeartRate        AnomalyLabel = "Abnormal Heart Rate"
	LabelOxygenSaturation AnomalyLabel = "Low SpO2 Level"
)

var ErrInvalidThresholds = errors.New("invalid thresholds")

// Range es un intervalo cerrado. Un extremo nil significa "sin límite".
type Range struct {
	Min *float64
	Max *float64
}

// Between arma un rango cerrado [lo, hi].
func Between(lo, hi float64) Range {
	return Range{Min: &lo, Max: &hi}
}

// AtLeast arma un rango con solo límite inferior.
func AtLeast(lo float64) Range {
	return Range{Min: &lo}
}

func (r Range) clone() Range {
	var out Range
	if r.Min != nil {
		lo := *r.Min
		out.Min = &lo
	}
	if r.Max != nil {
		hi := *r.Max
		out.Max = &hi
	}
	return out
}

// Contains: los extremos son normales (inclusive).
func (r Range) Contains(v float64) bool {
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// Rule asocia un signo vital con su rango normal y la etiqueta a emitir.
type Rule struct {
	Kind  Kind
	Range Range
	Label AnomalyLabel
}

// Thresholds es la tabla de reglas. El orden de la tabla es el orden de evaluación
// y, por lo tanto, el orden de las etiquetas en la salida.
type Thresholds []Rule

// DefaultThresholds devuelve los rangos clínicos usados por la estación de enfermería.
func DefaultThresholds() Thresholds {
	return Thresholds{
		{Kind: KindSystolic, Range: Between(90, 140), Label: LabelSystolic},
		{Kind: KindDiastolic, Range: Between(60, 90), Label: LabelDiastolic},
		{Kind: KindTemperature, Range: Between(36.0, 38.5), Label: LabelTemperature},
		{Kind: KindHeartRate, Range: Between(60, 100), Label: LabelHeartRate},
		{Kind: KindOxygenSaturation, Range: AtLeast(95), Label: LabelOxygenSaturation},
	}
}

// With devuelve una copia de la tabla con el rango de kind reemplazado.
// Si kind no existe en la tabla, la copia queda igual.
func (t Thresholds) With(kind Kind, rg Range) Thresholds {
	out := t.clone()
	for i := range out {
		if out[i].Kind == kind {
			out[i].Range = rg.clone()
		}
	}
	return out
}

// clone copia también los límites: Range guarda punteros.
func (t Thresholds) clone() Thresholds {
	out := make(Thresholds, len(t))
	for i, r := range t {
		r.Range = r.Range.clone()
		out[i] = r
	}
	return out
}

// Get busca la regla de un signo vital.
func (t Thresholds) Get(kind Kind) (Rule, bool) {
	for _, r := range t {
		if r.Kind == kind {
			return r, true
		}
	}
	return Rule{}, false
}

func (t Thresholds) Validate() error {
	seen := map[Kind]struct{}{}
	for _, r := range t {
		if !knownKind(r.Kind) {
			return fmt.Errorf("%w: unknown kind %q", ErrInvalidThresholds, r.Kind)
		}
		if _, dup := seen[r.Kind]; dup {
			return fmt.Errorf("%w: duplicated kind %q", ErrInvalidThresholds, r.Kind)
		}
		seen[r.Kind] = struct{}{}

		if r.Label == "" {
			return fmt.Errorf("%w: %s without label", ErrInvalidThresholds, r.Kind)
		}
		if r.Range.Min != nil && r.Range.Max != nil && *r.Range.Min > *r.Range.Max {
			return fmt.Errorf("%w: %s min > max", ErrInvalidThresholds, r.Kind)
		}
	}
	return nil
}

// Classifier evalúa lecturas contra una tabla fija. No guarda estado mutable,
// así que puede compartirse entre goroutines.
type Classifier struct {
	rules Thresholds
}

func NewClassifier(t Thresholds) *Classifier {
	return &Classifier{rules: t.clone()}
}

// Thresholds expone una copia de la tabla en uso.
func (c *Classifier) Thresholds() Thresholds {
	return c.rules.clone()
}

// Classify devuelve las etiquetas de los valores fuera de rango, en el orden de la tabla.
// Nunca devuelve nil: sin anomalías el resultado es un slice vacío.
func (c *Classifier) Classify(r Reading) []AnomalyLabel {
	out := make([]AnomalyLabel, 0, len(c.rules))
	for _, rule := range c.rules {
		if !rule.Range.Contains(r.value(rule.Kind)) {
			out = append(out, rule.Label)
		}
	}
	return out
}

var defaultClassifier = NewClassifier(DefaultThresholds())

// Classify usa la tabla por defecto.
func Classify(r Reading) []AnomalyLabel {
	return defaultClassifier.Classify(r)
}

func (r Reading) value(k Kind) float64 {
	switch k {
	case KindSystolic:
		return float64(r.SystolicPressure)
	case KindDiastolic:
		return float64(r.DiastolicPressure)
	case KindTemperature:
		return r.Temperature
	case KindHeartRate:
		return float64(r.HeartRate)
	case KindOxygenSaturation:
		return float64(r.OxygenSaturation)
	default:
		return 0
	}
}

func knownKind(k Kind) bool {
	switch k {
	case KindSystolic, KindDiastolic, KindTemperature, KindHeartRate, KindOxygenSaturation:
		return true
	}
	return false
}
