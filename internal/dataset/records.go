package dataset

// HistoricalLead is a read-only reference record from the historical leads
// export. Purchased keeps the raw ternary outcome; DidPurchase reports a
// definite yes.
type HistoricalLead struct {
	LeadID           string
	Industry         string
	Program          string
	CampaignType     string
	Channel          string
	Device           string
	GenerationHour   string
	ContactRole      string
	City             string
	Urgency          int
	PriorInteraction bool
	HoursToContact   float64
	ContactAttempts  int
	AdvisorNote      string
	Status           string
	Purchased        string
}

// DidPurchase reports whether the historical lead converted.
func (l HistoricalLead) DidPurchase() bool {
	switch l.Purchased {
	case "Sí", "sí", "Si", "si", "Yes", "yes":
		return true
	default:
		return false
	}
}

// ClientBehavior is one row of the client behavior export.
type ClientBehavior struct {
	ClientID              int
	Frequency             int
	Engagement            float64
	HistoricalValue       float64
	Satisfaction          int
	Category              string
	DaysSinceLastPurchase int
	PreferredChannel      string
}

// ClientTransaction is one row of the client transactions export.
type ClientTransaction struct {
	ClientID      int
	MonthlyBudget float64
	CompanySize   string
	Industry      string
}

func historicalLeadFromRow(row Row) HistoricalLead {
	return HistoricalLead{
		LeadID:           row.Str("lead_id"),
		Industry:         row.Str("industria"),
		Program:          row.Str("programa_producto_interes"),
		CampaignType:     row.Str("tipo_campana"),
		Channel:          row.Str("fuente_meta"),
		Device:           row.Str("dispositivo"),
		GenerationHour:   row.Str("hora_generacion"),
		ContactRole:      row.Str("cargo_lead"),
		City:             row.Str("ciudad"),
		Urgency:          row.Int("urgencia_compra"),
		PriorInteraction: row.Bool("interaccion_previa"),
		HoursToContact:   row.Float("horas_hasta_contacto"),
		ContactAttempts:  row.Int("intentos_contacto"),
		AdvisorNote:      row.Str("observacion_asesor"),
		Status:           row.Str("status"),
		Purchased:        row.Str("compro"),
	}
}

func clientBehaviorFromRow(row Row) ClientBehavior {
	return ClientBehavior{
		ClientID:              row.Int("id_cliente"),
		Frequency:             row.Int("frecuencia_compra"),
		Engagement:            row.Float("engagement"),
		HistoricalValue:       row.Float("valor_historico"),
		Satisfaction:          row.Int("satisfaccion"),
		Category:              row.Str("categoria_cliente"),
		DaysSinceLastPurchase: row.Int("dias_desde_ultima_compra"),
		PreferredChannel:      row.Str("canal_preferido"),
	}
}

func clientTransactionFromRow(row Row) ClientTransaction {
	// The original export spells the column with an eñe; newer exports use
	// the ASCII form.
	size := row.Str("tamaño_empresa")
	if size == "" {
		size = row.Str("tamano_empresa")
	}
	return ClientTransaction{
		ClientID:      row.Int("id_cliente"),
		MonthlyBudget: row.Float("presupuesto"),
		CompanySize:   size,
		Industry:      row.Str("industria"),
	}
}
