package token

// Canonical field keys shared by the catalog, the form layer and the renderer.
const (
	KeyDescribeProblem  = "describe_problem"
	KeyName             = "name"
	KeyTechnicianName   = "technician_name"
	KeyDate             = "date"
	KeyHour             = "hour"
	KeyChannel          = "channel"
	KeySpecialist       = "specialist"
	KeyWorkOrderNumber  = "work_order_number"
	KeyASMNumber        = "asm_number"
	KeyErrorType        = "error_type"
	KeyExplanation      = "explanation"
	KeyEquipmentSystem  = "equipment_system"
	KeyReason           = "reason"
	KeyItem             = "item"
	compositeDateTimeID = "date_time"
)

// Synonyms is an immutable slug → canonical key table. Build it once at startup
// and share it; nothing mutates it after construction.
type Synonyms struct {
	table map[string]string
}

// NewSynonyms copies entries into a new table. Keys are slugged so callers may
// pass human spellings.
func NewSynonyms(entries map[string]string) *Synonyms {
	table := make(map[string]string, len(entries))
	for variant, canonical := range entries {
		table[Slug(variant)] = canonical
	}
	return &Synonyms{table: table}
}

// Lookup returns the canonical key registered for slug.
func (s *Synonyms) Lookup(slug string) (string, bool) {
	if s == nil {
		return "", false
	}
	key, ok := s.table[slug]
	return key, ok
}

// Len reports the number of registered spellings.
func (s *Synonyms) Len() int {
	if s == nil {
		return 0
	}
	return len(s.table)
}

// DefaultSynonyms returns the table used by the built-in catalog.
func DefaultSynonyms() *Synonyms {
	return NewSynonyms(map[string]string{
		"nome":         KeyName,
		"cliente":      KeyName,
		"nome_cliente": KeyName,
		"client":       KeyName,
		"client_name":  KeyName,
		"nome_tecnico": KeyTechnicianName,
		"tecnico":      KeyTechnicianName,
		"technician":   KeyTechnicianName,
		"especialista": KeySpecialist,
		"specialist":   KeySpecialist,
		"canal":        KeyChannel,
		"channel":      KeyChannel,

		"numero_ordem_de_servico": KeyWorkOrderNumber,
		"numero_os":               KeyWorkOrderNumber,
		"work_order_number":       KeyWorkOrderNumber,

		// [NÚMERO] only appears in instability reports, where it is the ASM number.
		"numero":     KeyASMNumber,
		"asm":        KeyASMNumber,
		"asm_number": KeyASMNumber,

		"tipo":                  KeyErrorType,
		"tipo_erro":             KeyErrorType,
		"type":                  KeyErrorType,
		"explique_a_situacao":   KeyExplanation,
		"explique":              KeyExplanation,
		"explain_the_situation": KeyExplanation,

		"equipamento_sistema": KeyEquipmentSystem,
		"motivo":              KeyReason,
		"item":                KeyItem,

		// Equipment shortage templates ask for the missing item this way.
		"descreva_situacao": KeyItem,
	})
}

// describeVariants are spellings of "describe the problem" that the stem rule misses.
var describeVariants = map[string]bool{
	"descreva":              true,
	"descrever":             true,
	"descrever_problema":    true,
	"descrever_o_problema":  true,
	"descreva_o_problema":   true,
	"descricao_do_problema": true,
}
