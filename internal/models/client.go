package models

import "time"

// Client represents one registry client. The registry is maintained outside
// the import flow; the importer only reads it.
//
// DNI is the national ID used to match clients against bank rows. CodCliente
// is the unique business code everything else references.
type Client struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	CodCliente string `gorm:"size:100;uniqueIndex;not null" json:"cod_cliente"`
	DNI        string `gorm:"size:8;index" json:"dni"`
	Nombre     string `gorm:"size:100;not null" json:"nombre"`
	Apellidos  string `gorm:"size:100;not null" json:"apellidos"`

	Correo    string `gorm:"size:100" json:"correo"`
	Celular   string `gorm:"size:20" json:"celular"`
	Status    string `gorm:"size:50" json:"status"`
	Provincia string `gorm:"size:100" json:"provincia"`
	FichaRUC  string `gorm:"size:20" json:"ficha_ruc"`

	FechaInicio *time.Time `json:"fecha_inicio"`
	FechaFinal  *time.Time `json:"fecha_final"`

	// Referral program data. CodigoReferido is free text; the fee engine
	// only recognizes codes that parse as a known program number.
	CodigoReferido              string `gorm:"size:50" json:"codigo_referido"`
	NombreReferido              string `gorm:"size:100" json:"nombre_referido"`
	CuentaBancoReferido         string `gorm:"size:50" json:"cuenta_banco_referido"`
	CuentaInterbancarioReferido string `gorm:"size:50" json:"cuenta_interbancario_referido"`

	// Tariff applied to this client's operations, by tariff code.
	CodTarifa string `gorm:"size:100;index" json:"cod_tarifa"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NombreCompleto returns "Nombre Apellidos" for display fields.
func (c *Client) NombreCompleto() string {
	if c.Apellidos == "" {
		return c.Nombre
	}
	return c.Nombre + " " + c.Apellidos
}
