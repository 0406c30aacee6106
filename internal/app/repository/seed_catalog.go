package repository

import "github.com/elinacho/lumiskin-backend/internal/app/model"

func usd(amount float64) model.Money {
	return model.Money{Amount: amount, CurrencyCode: "USD"}
}

// SeedCatalog is the fixed demo catalog used when the Storefront API is
// unavailable or not configured. IDs are human-readable slugs, unlike the
// global IDs of remote products.
func SeedCatalog() []model.Product {
	return []model.Product{
		{
			ID:       "gentle-foaming-cleanser",
			Source:   model.SourceLocal,
			Name:     "Gentle Foaming Cleanser",
			Price:    usd(14.99),
			Category: "cleanser",
			Image:    "/images/products/gentle-foaming-cleanser-1.jpg",
			Images: []string{
				"/images/products/gentle-foaming-cleanser-1.jpg",
				"/images/products/gentle-foaming-cleanser-2.jpg",
			},
			Description: "A low-pH gel cleanser that lifts away sunscreen and daily buildup without stripping the skin barrier.",
			Benefits:    []string{"Removes impurities", "Maintains skin pH", "No tight feeling after rinsing"},
			SkinTypes:   []string{"all", "sensitive"},
			KeyIngredients: []model.KeyIngredient{
				{Name: "Glycerin", Function: "humectant", Description: "Draws water into the upper layers of the skin."},
				{Name: "Coco-Betaine", Function: "cleansing agent", Description: "Mild surfactant derived from coconut oil."},
			},
			AllIngredients: "Aqua, Glycerin, Coco-Betaine, Sodium Cocoyl Isethionate, Panthenol, Allantoin, Citric Acid",
			HowToUse: []string{
				"Massage a small amount onto damp skin.",
				"Rinse thoroughly with lukewarm water.",
				"Use morning and evening.",
			},
			InStock: true,
			Size:    "150ml",
		},
		{
			ID:       "vitamin-c-brightening-serum",
			Source:   model.SourceLocal,
			Name:     "Vitamin C Brightening Serum",
			Price:    usd(24.99),
			Category: "serum",
			Image:    "/images/products/vitamin-c-serum-1.jpg",
			Images: []string{
				"/images/products/vitamin-c-serum-1.jpg",
				"/images/products/vitamin-c-serum-2.jpg",
				"/images/products/vitamin-c-serum-texture.jpg",
			},
			Description: "A stabilized 15% L-ascorbic acid serum that targets dullness and uneven tone.",
			Benefits:    []string{"Brightens skin tone", "Fades dark spots", "Antioxidant protection"},
			SkinTypes:   []string{"normal", "combination", "oily"},
			KeyIngredients: []model.KeyIngredient{
				{Name: "L-Ascorbic Acid", Percentage: "15%", Function: "antioxidant", Description: "Pure vitamin C for visible brightening."},
				{Name: "Ferulic Acid", Percentage: "0.5%", Function: "stabilizer", Description: "Stabilizes vitamin C and boosts its efficacy."},
				{Name: "Vitamin E", Percentage: "1%", Function: "antioxidant", Description: "Works synergistically with vitamin C."},
			},
			AllIngredients: "Aqua, Ascorbic Acid, Propanediol, Tocopherol, Ferulic Acid, Sodium Hyaluronate, Phenoxyethanol",
			HowToUse: []string{
				"Apply 3-4 drops to clean, dry skin in the morning.",
				"Follow with moisturizer and sunscreen.",
			},
			Warnings: []string{"May cause tingling on first use.", "Always wear SPF during the day."},
			InStock:  true,
			Size:     "30ml",
		},
		{
			ID:       "niacinamide-pore-serum",
			Source:   model.SourceLocal,
			Name:     "Niacinamide 10% Pore Refining Serum",
			Price:    usd(18.99),
			Category: "serum",
			Image:    "/images/products/niacinamide-serum-1.jpg",
			Images: []string{
				"/images/products/niacinamide-serum-1.jpg",
				"/images/products/niacinamide-serum-2.jpg",
			},
			Description: "A lightweight serum that visibly minimizes pores and balances oil production over time.",
			Benefits:    []string{"Refines pores", "Regulates sebum", "Evens texture"},
			SkinTypes:   []string{"oily", "combination", "acne-prone"},
			KeyIngredients: []model.KeyIngredient{
				{Name: "Niacinamide", Percentage: "10%", Function: "barrier support", Description: "Vitamin B3 that improves tone and pore appearance."},
				{Name: "Zinc PCA", Percentage: "1%", Function: "sebum control", Description: "Helps balance surface oil."},
			},
			AllIngredients: "Aqua, Niacinamide, Pentylene Glycol, Zinc PCA, Tamarindus Indica Seed Gum, Carrageenan, Ethoxydiglycol",
			HowToUse: []string{
				"Apply a few drops morning and evening before heavier creams.",
			},
			InStock: true,
			Size:    "30ml",
		},
		{
			ID:       "hyaluronic-hydra-moisturizer",
			Source:   model.SourceLocal,
			Name:     "Hyaluronic Hydra Moisturizer",
			Price:    usd(22.50),
			Category: "moisturizer",
			Image:    "/images/products/hydra-moisturizer-1.jpg",
			Images: []string{
				"/images/products/hydra-moisturizer-1.jpg",
			},
			Description: "A gel-cream with triple-weight hyaluronic acid for all-day hydration without heaviness.",
			Benefits:    []string{"72h hydration", "Plumps fine lines", "Non-comedogenic"},
			SkinTypes:   []string{"all", "dehydrated"},
			KeyIngredients: []model.KeyIngredient{
				{Name: "Sodium Hyaluronate", Percentage: "2%", Function: "humectant", Description: "Multi-weight hyaluronic acid complex."},
				{Name: "Squalane", Function: "emollient", Description: "Plant-derived lipid that locks in moisture."},
			},
			AllIngredients: "Aqua, Glycerin, Sodium Hyaluronate, Squalane, Cetearyl Alcohol, Betaine, Carbomer, Phenoxyethanol",
			HowToUse: []string{
				"Apply to damp skin as the last step of your evening routine.",
				"Layer under sunscreen in the morning.",
			},
			InStock: true,
			Size:    "50ml",
		},
		{
			ID:       "daily-defense-spf50",
			Source:   model.SourceLocal,
			Name:     "Daily Defense Sunscreen SPF 50+",
			Price:    usd(19.99),
			Category: "sunscreen",
			Image:    "/images/products/daily-defense-spf50-1.jpg",
			Images: []string{
				"/images/products/daily-defense-spf50-1.jpg",
				"/images/products/daily-defense-spf50-2.jpg",
			},
			Description: "A weightless broad-spectrum sunscreen with no white cast, designed for everyday wear.",
			Benefits:    []string{"SPF 50+ PA++++", "No white cast", "Layers well under makeup"},
			SkinTypes:   []string{"all"},
			KeyIngredients: []model.KeyIngredient{
				{Name: "Uvinul A Plus", Function: "UVA filter", Description: "Photostable modern UVA filter."},
				{Name: "Centella Asiatica", Function: "soothing", Description: "Calms UV-stressed skin."},
			},
			AllIngredients: "Aqua, Diethylamino Hydroxybenzoyl Hexyl Benzoate, Ethylhexyl Triazone, Centella Asiatica Extract, Niacinamide, Glycerin",
			HowToUse: []string{
				"Apply generously as the final step of your morning routine.",
				"Reapply every two hours of sun exposure.",
			},
			Warnings: []string{"For external use only."},
			InStock:  true,
			Size:     "50ml",
		},
		{
			ID:       "retinol-renewal-night-cream",
			Source:   model.SourceLocal,
			Name:     "Retinol Renewal Night Cream",
			Price:    usd(29.99),
			Category: "treatment",
			Image:    "/images/products/retinol-night-cream-1.jpg",
			Images: []string{
				"/images/products/retinol-night-cream-1.jpg",
			},
			Description: "An encapsulated 0.3% retinol cream that smooths fine lines while you sleep.",
			Benefits:    []string{"Smooths fine lines", "Improves texture", "Gentle encapsulated delivery"},
			SkinTypes:   []string{"normal", "mature"},
			KeyIngredients: []model.KeyIngredient{
				{Name: "Encapsulated Retinol", Percentage: "0.3%", Function: "cell turnover", Description: "Time-released to minimize irritation."},
				{Name: "Bisabolol", Function: "soothing", Description: "Calms potential retinol irritation."},
			},
			AllIngredients: "Aqua, Glycerin, Caprylic/Capric Triglyceride, Retinol, Bisabolol, Ceramide NP, Tocopherol, Phenoxyethanol",
			HowToUse: []string{
				"Use 2-3 nights per week, building up to nightly.",
				"Apply a pea-sized amount to dry skin after cleansing.",
			},
			Warnings: []string{"Do not use with AHA/BHA on the same night.", "Not recommended during pregnancy."},
			InStock:  true,
			Size:     "30ml",
		},
		{
			ID:       "aha-bha-clarifying-toner",
			Source:   model.SourceLocal,
			Name:     "AHA/BHA Clarifying Toner",
			Price:    usd(16.50),
			Category: "toner",
			Image:    "/images/products/aha-bha-toner-1.jpg",
			Images: []string{
				"/images/products/aha-bha-toner-1.jpg",
			},
			Description: "A gentle daily exfoliating toner that keeps pores clear and skin smooth.",
			Benefits:    []string{"Unclogs pores", "Smooths rough texture", "Preps skin for serums"},
			SkinTypes:   []string{"oily", "combination"},
			KeyIngredients: []model.KeyIngredient{
				{Name: "Glycolic Acid", Percentage: "5%", Function: "exfoliant", Description: "AHA that loosens dead surface cells."},
				{Name: "Salicylic Acid", Percentage: "0.5%", Function: "exfoliant", Description: "Oil-soluble BHA that clears inside the pore."},
			},
			AllIngredients: "Aqua, Glycolic Acid, Butylene Glycol, Salicylic Acid, Panthenol, Sodium Hydroxide, Allantoin",
			HowToUse: []string{
				"Sweep over clean skin with a cotton pad in the evening.",
				"Start with 2-3 uses per week.",
			},
			Warnings: []string{"Increases sun sensitivity; use SPF daily."},
			InStock:  false,
			Size:     "200ml",
		},
		{
			ID:       "ceramide-barrier-balm",
			Source:   model.SourceLocal,
			Name:     "Ceramide Barrier Repair Balm",
			Price:    usd(26.00),
			Category: "moisturizer",
			Image:    "/images/products/ceramide-balm-1.jpg",
			Images: []string{
				"/images/products/ceramide-balm-1.jpg",
				"/images/products/ceramide-balm-2.jpg",
			},
			Description: "A rich balm with a 3:1:1 ceramide ratio for compromised or weather-stressed skin.",
			Benefits:    []string{"Repairs barrier", "Relieves tightness", "Fragrance-free"},
			SkinTypes:   []string{"dry", "sensitive"},
			KeyIngredients: []model.KeyIngredient{
				{Name: "Ceramide NP", Function: "barrier lipid", Description: "Replenishes the skin's own lipid matrix."},
				{Name: "Cholesterol", Function: "barrier lipid", Description: "Completes the physiological lipid ratio."},
				{Name: "Panthenol", Percentage: "5%", Function: "soothing", Description: "Pro-vitamin B5 that calms irritation."},
			},
			AllIngredients: "Aqua, Petrolatum, Glycerin, Ceramide NP, Ceramide AP, Ceramide EOP, Cholesterol, Panthenol, Carbomer",
			HowToUse: []string{
				"Apply to dry or irritated areas as needed.",
				"Can be used as an overnight mask on very dry skin.",
			},
			InStock: true,
			Size:    "75ml",
		},
	}
}
