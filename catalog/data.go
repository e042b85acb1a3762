package catalog

import "merma/models"

// Seed data for the merma/recycling storefront.

var seedCategories = []models.Category{
	{
		ID:          "plastico-reciclado",
		Name:        "Plástico Reciclado",
		Icon:        "fas fa-recycle",
		Description: "Productos fabricados con plásticos recuperados de merma industrial",
	},
	{
		ID:          "madera-reutilizada",
		Name:        "Madera Reutilizada",
		Icon:        "fas fa-tree",
		Description: "Maderas de segunda vida para construcción y decoración",
	},
	{
		ID:          "construccion-sostenible",
		Name:        "Construcción Sostenible",
		Icon:        "fas fa-hammer",
		Description: "Materiales eco-friendly para construcción",
	},
	{
		ID:          "compostaje",
		Name:        "Compostaje",
		Icon:        "fas fa-leaf",
		Description: "Herramientas y kits para compostaje casero",
	},
	{
		ID:          "textiles-reciclados",
		Name:        "Textiles Reciclados",
		Icon:        "fas fa-tshirt",
		Description: "Telas y productos textiles reciclados",
	},
	{
		ID:          "metal-recuperado",
		Name:        "Metal Recuperado",
		Icon:        "fas fa-cog",
		Description: "Metales y componentes recuperados de la industria",
	},
}

var seedProducts = []models.Product{
	{
		ID:                   1,
		Name:                 "Bolsa Reutilizable de Plástico Reciclado",
		Price:                15.90,
		OriginalPrice:        25.00,
		Description:          "Bolsa resistente fabricada 100% con plásticos recuperados de merma industrial. Capacidad de 15kg, lavable y reutilizable.",
		Category:             "plastico-reciclado",
		Image:                "https://images.unsplash.com/photo-1573160813959-df65f19ba79d?w=400&h=400&fit=crop",
		Stock:                150,
		Rating:               4.5,
		Reviews:              28,
		IsOnSale:             true,
		IsFeatured:           true,
		Tags:                 []string{"eco-friendly", "reutilizable", "resistente"},
		Material:             "Plástico PET reciclado",
		SustainabilityRating: 5,
	},
	{
		ID:                   2,
		Name:                 "Tablón de Pino Reutilizado 2x4",
		Price:                120.50,
		OriginalPrice:        180.00,
		Description:          "Tablón de pino recuperado de demoliciones, tratado y listo para uso. Ideal para proyectos de construcción sostenible.",
		Category:             "madera-reutilizada",
		Image:                "https://images.unsplash.com/photo-1586864387967-d02ef85d93e8?w=400&h=400&fit=crop",
		Stock:                45,
		Rating:               4.7,
		Reviews:              12,
		IsOnSale:             true,
		IsFeatured:           true,
		Tags:                 []string{"construcción", "sostenible", "tratado"},
		Material:             "Pino recuperado",
		SustainabilityRating: 4,
	},
	{
		ID:                   3,
		Name:                 "Ladrillo Ecológico de Residuos",
		Price:                8.75,
		OriginalPrice:        12.00,
		Description:          "Ladrillo fabricado a partir de residuos de construcción y demolición. Mayor aislamiento térmico que ladrillos tradicionales.",
		Category:             "construccion-sostenible",
		Image:                "https://images.unsplash.com/photo-1558618047-3c8c76ca7d13?w=400&h=400&fit=crop",
		Stock:                200,
		Rating:               4.3,
		Reviews:              34,
		IsOnSale:             false,
		IsFeatured:           true,
		Tags:                 []string{"construcción", "aislante", "ecológico"},
		Material:             "Residuos de construcción compactados",
		SustainabilityRating: 5,
	},
	{
		ID:                   4,
		Name:                 "Kit de Compostaje Familiar",
		Price:                89.90,
		OriginalPrice:        120.00,
		Description:          "Kit completo para compostaje casero. Incluye compostera de 120L, manual y termómetro de compost.",
		Category:             "compostaje",
		Image:                "https://images.unsplash.com/photo-1416879595882-3373a0480b5b?w=400&h=400&fit=crop",
		Stock:                30,
		Rating:               4.8,
		Reviews:              22,
		IsOnSale:             true,
		IsFeatured:           true,
		Tags:                 []string{"compost", "familiar", "completo"},
		Material:             "Plástico reciclado y metal",
		SustainabilityRating: 5,
	},
	{
		ID:                   5,
		Name:                 "Tela de Algodón Reciclado",
		Price:                45.00,
		Description:          "Tela de algodón 100% reciclado, perfecta para proyectos de costura sostenible. Rollo de 5 metros.",
		Category:             "textiles-reciclados",
		Image:                "https://images.unsplash.com/photo-1586864387543-7d09ea2c8bdd?w=400&h=400&fit=crop",
		Stock:                25,
		Rating:               4.2,
		Reviews:              15,
		IsOnSale:             false,
		IsFeatured:           false,
		Tags:                 []string{"costura", "algodón", "reciclado"},
		Material:             "Algodón 100% reciclado",
		SustainabilityRating: 4,
	},
	{
		ID:                   6,
		Name:                 "Tubo de Acero Recuperado 1\"",
		Price:                35.75,
		OriginalPrice:        50.00,
		Description:          "Tubo de acero galvanizado recuperado de la industria. Perfecto para estructuras y proyectos de construcción.",
		Category:             "metal-recuperado",
		Image:                "https://images.unsplash.com/photo-1504328345606-18bbc8c9d7d1?w=400&h=400&fit=crop",
		Stock:                80,
		Rating:               4.6,
		Reviews:              18,
		IsOnSale:             true,
		IsFeatured:           false,
		Tags:                 []string{"construcción", "estructura", "galvanizado"},
		Material:             "Acero galvanizado recuperado",
		SustainabilityRating: 4,
	},
	{
		ID:                   7,
		Name:                 "Panel Solar Reacondicionado 100W",
		Price:                250.00,
		OriginalPrice:        400.00,
		Description:          "Panel solar de 100W reacondicionado y certificado. Perfecto para proyectos de energía sostenible.",
		Category:             "metal-recuperado",
		Image:                "https://images.unsplash.com/photo-1509391366360-2e959784a276?w=400&h=400&fit=crop",
		Stock:                15,
		Rating:               4.9,
		Reviews:              8,
		IsOnSale:             true,
		IsFeatured:           true,
		Tags:                 []string{"solar", "energía", "reacondicionado"},
		Material:             "Silicio y aluminio reciclado",
		SustainabilityRating: 5,
	},
	{
		ID:                   8,
		Name:                 "Compostador Rotativo de 300L",
		Price:                180.00,
		Description:          "Compostador rotativo de alta capacidad fabricado con plástico reciclado. Sistema de rotación fácil.",
		Category:             "compostaje",
		Image:                "https://images.unsplash.com/photo-1585409677983-0f6c41ca9c3b?w=400&h=400&fit=crop",
		Stock:                12,
		Rating:               4.4,
		Reviews:              9,
		IsOnSale:             false,
		IsFeatured:           false,
		Tags:                 []string{"compost", "rotativo", "gran capacidad"},
		Material:             "Plástico HDPE reciclado",
		SustainabilityRating: 5,
	},
}

var seedReviews = []models.Review{
	{
		ID:        1,
		ProductID: 1,
		UserID:    1,
		UserName:  "María González",
		Rating:    5,
		Comment:   "Excelente calidad, muy resistente y el precio es increíble para ser un producto reciclado.",
		Date:      "2025-01-15",
	},
	{
		ID:        2,
		ProductID: 1,
		UserID:    2,
		UserName:  "Carlos Mendoza",
		Rating:    4,
		Comment:   "Muy buena bolsa, la uso para hacer las compras. Me gusta apoyar productos sostenibles.",
		Date:      "2025-01-10",
	},
	{
		ID:        3,
		ProductID: 4,
		UserID:    3,
		UserName:  "Ana Huamán",
		Rating:    5,
		Comment:   "El kit está completo y muy bien explicado. Ya estoy haciendo mi propio compost en casa.",
		Date:      "2025-01-08",
	},
}

var seedUser = models.User{
	ID:    1,
	Name:  "Usuario de Prueba",
	Email: "usuario@example.com",
	Phone: "+51 987 654 321",
	Address: models.Address{
		Street:  "Av. Reciclaje 123",
		City:    "Lima",
		State:   "Lima",
		ZipCode: "15001",
		Country: "Perú",
	},
}
