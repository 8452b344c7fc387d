package accounts

import "github.com/facto-dev/facto/internal/model"

// DefaultChart returns the starter chart of accounts written by init.
// Dotted codes follow the common Latin American layout: class, group,
// subgroup, detail.
func DefaultChart() []model.Account {
	return []model.Account{
		{Code: "1", Name: "Activos"},
		{Code: "1.1", Name: "Activo Corriente"},
		{Code: "1.1.01", Name: "Caja"},
		{Code: "1.1.01.01", Name: "Caja General", Description: "Efectivo en caja"},
		{Code: "1.1.01.02", Name: "Caja Chica"},
		{Code: "1.1.02", Name: "Bancos"},
		{Code: "1.1.02.01", Name: "Banco Pichincha", Description: "Cuenta corriente principal"},
		{Code: "1.1.02.02", Name: "Banco Guayaquil"},
		{Code: "1.1.03", Name: "Cuentas por Cobrar"},
		{Code: "1.1.03.01", Name: "Clientes"},
		{Code: "2", Name: "Pasivos"},
		{Code: "2.1", Name: "Pasivo Corriente"},
		{Code: "2.1.01", Name: "IVA por Pagar", Description: "Impuesto cobrado pendiente de declarar"},
		{Code: "4", Name: "Ingresos"},
		{Code: "4.1", Name: "Ventas"},
		{Code: "4.1.01", Name: "Ventas de Productos"},
		{Code: "4.1.02", Name: "Ventas de Servicios"},
	}
}
