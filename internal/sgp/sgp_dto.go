package sgp

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// flexDecimal accepts JSON numbers and numeric strings. Anything else, null
// included, decodes to zero so one malformed amount never fails a whole
// request.
type flexDecimal struct {
	decimal.Decimal
}

func (f *flexDecimal) UnmarshalJSON(b []byte) error {
	raw := strings.TrimSpace(string(bytes.Trim(b, `"`)))
	d, err := decimal.NewFromString(raw)
	if err != nil {
		f.Decimal = decimal.Zero
		return nil
	}
	f.Decimal = d
	return nil
}

// flexID accepts numeric or string identifiers.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

func (f flexID) Int64() int64 {
	n, err := strconv.ParseInt(string(f), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// optionalRate keeps rates as strings; nil when the backend sends null.
type optionalRate struct {
	Value *string
}

func (o *optionalRate) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		o.Value = nil
		return nil
	}
	v := strings.TrimSpace(string(bytes.Trim(b, `"`)))
	o.Value = &v
	return nil
}

type conceptoViaticoDTO struct {
	ID                  flexID       `json:"id"`
	Nombre              string       `json:"nombre"`
	PrecioInstitucional optionalRate `json:"precioInstitucional"`
	PrecioTerceros      optionalRate `json:"precioTerceros"`
}

type tipoGastoDTO struct {
	ID     flexID `json:"id"`
	Nombre string `json:"nombre"`
}

type planificacionDTO struct {
	ID                flexID `json:"id"`
	Actividad         string `json:"actividad"`
	FechaInicio       string `json:"fechaInicio"`
	FechaFin          string `json:"fechaFin"`
	CantInstitucional int    `json:"cantInstitucional"`
	CantTerceros      int    `json:"cantTerceros"`
}

type viaticoDTO struct {
	ID              flexID      `json:"id"`
	IDPlanificacion flexID      `json:"idPlanificacion"`
	IDConcepto      flexID      `json:"idConcepto"`
	Concepto        string      `json:"concepto"`
	TipoDestino     string      `json:"tipoDestino"`
	Dias            int         `json:"dias"`
	CantPersonas    int         `json:"cantPersonas"`
	MontoNeto       flexDecimal `json:"montoNeto"`
	LiquidoPagable  flexDecimal `json:"liquidoPagable"`
}

type gastoDTO struct {
	ID             flexID      `json:"id"`
	IDTipoGasto    flexID      `json:"idTipoGasto"`
	TipoGasto      string      `json:"tipoGasto"`
	TipoDocumento  string      `json:"tipoDocumento"`
	Cantidad       flexDecimal `json:"cantidad"`
	CostoUnitario  flexDecimal `json:"costoUnitario"`
	MontoNeto      flexDecimal `json:"montoNeto"`
	LiquidoPagable flexDecimal `json:"liquidoPagable"`
}

type nominaDTO struct {
	ID             flexID      `json:"id"`
	NombreCompleto string      `json:"nombreCompleto"`
	Institucion    string      `json:"institucion"`
	MontoNeto      flexDecimal `json:"montoNeto"`
	LiquidoPagable flexDecimal `json:"liquidoPagable"`
}

type presupuestoDTO struct {
	ID              flexID       `json:"id"`
	IDPoa           flexID       `json:"idPoa"`
	Partida         string       `json:"partida"`
	Categoria       string       `json:"categoria"`
	IDPlanificacion flexID       `json:"idPlanificacion"`
	MontoReservado  flexDecimal  `json:"montoReservado"`
	SaldoDisponible flexDecimal  `json:"saldoDisponible"`
	Viaticos        []viaticoDTO `json:"viaticos"`
	Gastos          []gastoDTO   `json:"gastos"`
	Nominas         []nominaDTO  `json:"nominas"`
}

type solicitudDTO struct {
	ID              flexID             `json:"id"`
	CodigoSolicitud string             `json:"codigoSolicitud"`
	Estado          string             `json:"estado"`
	Planificaciones []planificacionDTO `json:"planificaciones"`
	Presupuestos    []presupuestoDTO   `json:"presupuestos"`
}
