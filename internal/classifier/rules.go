package classifier

import "dguaman/sri-facturas/internal/models"

// DefaultRules returns the built-in ordered rule table. Order is part of
// the contract: pharmacies named after saints must land in Salud even
// though SANTA MARIA is also a supermarket keyword, so health rules sit
// before food rules.
func DefaultRules() []Rule {
	return []Rule{
		{
			Category: models.CategoryHealth,
			Keywords: []string{
				"FARMACIA", "FYBECA", "SANA SANA", "CRUZ AZUL", "PHARMACYS",
				"MEDIC", "HOSPITAL", "CLINICA", "DENTAL", "ODONTOLOG",
				"OPTICA", "LABORATORIO",
			},
		},
		{
			Category: models.CategoryFood,
			Keywords: []string{
				"SUPERMAXI", "MEGAMAXI", "TIA ", "ALMACENES TIA", "AKI",
				"SANTA MARIA", "COMISARIATO", "SUPERMERCADO", "MINIMARKET",
				"RESTAURANT", "PIZZERIA", "CAFETERIA", "PANADERIA", "KFC",
				"MCDONALD", "POLLO", "MARISQUERIA",
			},
		},
		{
			Category: models.CategoryTransport,
			Keywords: []string{
				"GASOLINERA", "PRIMAX", "TERPEL", "PETROECUADOR", "PETROLEOS",
				"COMBUSTIBLE", "TAXI", "TRANSPORTE", "PASAJE", "PEAJE",
			},
		},
		{
			Category: models.CategoryEducation,
			Keywords: []string{
				"UNIVERSIDAD", "COLEGIO", "ESCUELA", "ACADEMIA", "LIBRERIA",
				"EDITORIAL", "EDUCA", "INSTITUTO",
			},
		},
		{
			Category: models.CategoryApparel,
			Keywords: []string{
				"DEPRATI", "ETAFASHION", "MARATHON", "ROPA", "CALZADO",
				"BOUTIQUE", "TEXTIL",
			},
		},
		{
			Category: models.CategoryTourism,
			Keywords: []string{
				"HOTEL", "HOSTAL", "HOSTERIA", "VIAJES", "TURISMO",
				"AEROLINEA", "AVIANCA", "LATAM",
			},
		},
		{
			Category: models.CategoryHousing,
			Keywords: []string{
				"ARRIENDO", "INMOBILIARIA", "CONSTRUCTORA", "FERRETERIA",
				"KYWI", "MUEBLE",
			},
		},
		{
			Category: models.CategoryUtilities,
			Keywords: []string{
				"CNT", "CLARO", "MOVISTAR", "TUENTI", "NETLIFE", "ELECTRICA",
				"ELECTRICO", "AGUA POTABLE", "EMAAP", "INTERAGUA", "INTERNET",
			},
		},
	}
}
