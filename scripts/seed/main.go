// Seeder for the catalog database. Clears the seven catalog tables and
// repopulates them with the lab's reference dataset. Run separately from
// the API server:
//
//	go run ./scripts/seed
package main

import (
	"log"

	"gorm.io/gorm"

	"github.com/mycolab-catalog/config"
	"github.com/mycolab-catalog/database"
	"github.com/mycolab-catalog/models"
)

func main() {
	config.LoadEnv()

	db, err := database.Connect(config.DatabasePath())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	log.Println("🌱 Seeding catalog database...")

	if err := clear(db); err != nil {
		log.Fatalf("Failed to clear existing data: %v", err)
	}
	log.Println("🧹 Existing data removed")

	seedStrains(db)
	seedCultureTypes(db)
	seedGrowParameters(db)
	seedSubstrates(db)
	seedConsumableItems(db)
	seedDurableItems(db)
	seedProtocols(db)

	log.Println("✅ Seed completed")
}

func clear(db *gorm.DB) error {
	targets := []interface{}{
		&models.Protocol{},
		&models.DurableItem{},
		&models.ConsumableItem{},
		&models.Substrate{},
		&models.GrowParameter{},
		&models.CultureType{},
		&models.Strain{},
	}
	for _, target := range targets {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(target).Error; err != nil {
			return err
		}
	}
	return nil
}

func create[M any](db *gorm.DB, label string, records []M) {
	for i := range records {
		if err := db.Create(&records[i]).Error; err != nil {
			log.Fatalf("Failed to seed %s: %v", label, err)
		}
	}
	log.Printf("✅ %d %s created", len(records), label)
}

func str(s string) *string { return &s }

func num(f float64) *float64 { return &f }

func seedStrains(db *gorm.DB) {
	create(db, "strains", []models.Strain{
		{
			Name:            "Pleurotus ostreatus - Cepa A",
			Species:         "Pleurotus ostreatus",
			Description:     str("Cepa comercial de shimeji branco, alta produtividade"),
			Origin:          str("Laboratório de Micologia - UFSC"),
			Characteristics: models.StringList{"alta produtividade", "resistente a contaminação", "coloração branca"},
		},
		{
			Name:            "Ganoderma lucidum - Cepa Premium",
			Species:         "Ganoderma lucidum",
			Description:     str("Cepa de reishi com alta concentração de triterpenos"),
			Origin:          str("Instituto de Biotecnologia - USP"),
			Characteristics: models.StringList{"alta concentração de triterpenos", "crescimento lento", "coloração vermelha"},
		},
		{
			Name:            "Lentinula edodes - Cepa B",
			Species:         "Lentinula edodes",
			Description:     str("Cepa de shiitake adaptada ao clima brasileiro"),
			Origin:          str("EMBRAPA"),
			Characteristics: models.StringList{"adaptada ao clima tropical", "textura firme", "sabor intenso"},
		},
		{
			Name:            "Agaricus bisporus - Cepa Híbrida",
			Species:         "Agaricus bisporus",
			Description:     str("Cepa híbrida de champignon com melhor rendimento"),
			Origin:          str("Laboratório Privado - SP"),
			Characteristics: models.StringList{"rendimento superior", "resistência a doenças", "coloração branca"},
		},
	})
}

func seedCultureTypes(db *gorm.DB) {
	create(db, "culture types", []models.CultureType{
		{
			Name:        "Cultura de Pleurotus",
			Description: str("Protocolo padrão para cultivo de Pleurotus ostreatus"),
			Medium:      str("PDA"),
			Temperature: num(25),
			Humidity:    num(85),
			PH:          num(6.5),
		},
		{
			Name:        "Cultura de Ganoderma",
			Description: str("Protocolo especializado para Ganoderma lucidum"),
			Medium:      str("MEA"),
			Temperature: num(28),
			Humidity:    num(90),
			PH:          num(7.0),
		},
		{
			Name:        "Cultura de Shiitake",
			Description: str("Protocolo para Lentinula edodes em serragem"),
			Medium:      str("Sabouraud"),
			Temperature: num(24),
			Humidity:    num(80),
			PH:          num(6.0),
		},
		{
			Name:        "Cultura de Champignon",
			Description: str("Protocolo tradicional para Agaricus bisporus"),
			Medium:      str("PDA"),
			Temperature: num(22),
			Humidity:    num(75),
			PH:          num(7.5),
		},
	})
}

func seedGrowParameters(db *gorm.DB) {
	create(db, "grow parameters", []models.GrowParameter{
		{
			Name:         "Temperatura de Crescimento",
			Type:         "temperatura",
			Unit:         "°C",
			MinValue:     num(20),
			OptimalValue: num(25),
			MaxValue:     num(30),
			Description:  str("Temperatura ideal para crescimento micelial"),
		},
		{
			Name:         "Umidade Relativa",
			Type:         "umidade",
			Unit:         "%",
			MinValue:     num(70),
			OptimalValue: num(85),
			MaxValue:     num(95),
			Description:  str("Umidade relativa do ar para desenvolvimento"),
		},
		{
			Name:         "pH do Substrato",
			Type:         "ph",
			Unit:         "pH",
			MinValue:     num(5.5),
			OptimalValue: num(6.5),
			MaxValue:     num(7.5),
			Description:  str("pH ideal do substrato de cultivo"),
		},
		{
			Name:         "Intensidade Luminosa",
			Type:         "luz",
			Unit:         "lux",
			MinValue:     num(100),
			OptimalValue: num(500),
			MaxValue:     num(1000),
			Description:  str("Intensidade luminosa para formação de corpos frutíferos"),
		},
		{
			Name:         "Concentração de CO2",
			Type:         "gas",
			Unit:         "ppm",
			MinValue:     num(400),
			OptimalValue: num(800),
			MaxValue:     num(1200),
			Description:  str("Concentração de CO2 para desenvolvimento"),
		},
	})
}

func seedSubstrates(db *gorm.DB) {
	create(db, "substrates", []models.Substrate{
		{
			Name:        "Serragem de Eucalipto",
			Type:        "orgânico",
			Composition: str("Celulose 45%, Lignina 30%, Hemicelulose 20%, Minerais 5%"),
			PH:          num(6.2),
			Nutrients:   models.StringList{"nitrogênio", "fósforo", "potássio", "magnésio", "cálcio"},
			Description: str("Substrato padrão para cultivo de cogumelos"),
		},
		{
			Name:        "Palha de Arroz",
			Type:        "orgânico",
			Composition: str("Celulose 35%, Lignina 15%, Hemicelulose 25%, Silício 20%"),
			PH:          num(7.0),
			Nutrients:   models.StringList{"silício", "nitrogênio", "fósforo", "potássio"},
			Description: str("Substrato rico em silício para cultivo especializado"),
		},
		{
			Name:        "Casca de Café",
			Type:        "orgânico",
			Composition: str("Celulose 40%, Lignina 25%, Cafeína 2%, Minerais 15%"),
			PH:          num(5.8),
			Nutrients:   models.StringList{"nitrogênio", "fósforo", "potássio", "cafeína"},
			Description: str("Substrato com propriedades estimulantes naturais"),
		},
		{
			Name:        "Substrato Sintético PDA",
			Type:        "sintético",
			Composition: str("Ágar 1.5%, Dextrose 2%, Batata 20%, Água 76.5%"),
			PH:          num(6.5),
			Nutrients:   models.StringList{"carboidratos", "vitaminas", "minerais"},
			Description: str("Meio de cultura sintético para isolamento"),
		},
	})
}

func seedConsumableItems(db *gorm.DB) {
	create(db, "consumable items", []models.ConsumableItem{
		{
			Name:          "Ágar PDA",
			Category:      "meio de cultura",
			Unit:          "g",
			Supplier:      str("Sigma-Aldrich"),
			CatalogNumber: str("P6366-500G"),
			Description:   str("Ágar Potato Dextrose para cultivo de fungos"),
		},
		{
			Name:          "Ágar MEA",
			Category:      "meio de cultura",
			Unit:          "g",
			Supplier:      str("Merck"),
			CatalogNumber: str("1.05463.0500"),
			Description:   str("Ágar Malt Extract para isolamento de fungos"),
		},
		{
			Name:          "Placas Petri",
			Category:      "equipamento descartável",
			Unit:          "unidades",
			Supplier:      str("Corning"),
			CatalogNumber: str("430166"),
			Description:   str("Placas Petri estéreis 90mm"),
		},
		{
			Name:          "Algodão Hidrófobo",
			Category:      "material de laboratório",
			Unit:          "g",
			Supplier:      str("LabSynth"),
			CatalogNumber: str("LS-001"),
			Description:   str("Algodão para tampões de frascos"),
		},
		{
			Name:          "Papel Alumínio",
			Category:      "material de laboratório",
			Unit:          "m",
			Supplier:      str("Local"),
			CatalogNumber: str("PA-001"),
			Description:   str("Papel alumínio para embalagem"),
		},
	})
}

func seedDurableItems(db *gorm.DB) {
	create(db, "durable items", []models.DurableItem{
		{
			Name:         "Autoclave Vertical",
			Category:     "equipamento",
			Brand:        str("Phoenix"),
			Model:        str("AV-50"),
			SerialNumber: str("AV50-2023-001"),
			Location:     str("Laboratório Principal"),
			Description:  str("Autoclave vertical 50L para esterilização"),
		},
		{
			Name:         "Microscópio Óptico",
			Category:     "equipamento",
			Brand:        str("Olympus"),
			Model:        str("CX23"),
			SerialNumber: str("CX23-2023-002"),
			Location:     str("Laboratório de Análise"),
			Description:  str("Microscópio óptico para análise morfológica"),
		},
		{
			Name:         "Estufa de Incubação",
			Category:     "equipamento",
			Brand:        str("Thermo Fisher"),
			Model:        str("Heratherm"),
			SerialNumber: str("HT-2023-003"),
			Location:     str("Sala de Crescimento"),
			Description:  str("Estufa com controle de temperatura e umidade"),
		},
		{
			Name:         "Balança Analítica",
			Category:     "equipamento",
			Brand:        str("Mettler Toledo"),
			Model:        str("XS205"),
			SerialNumber: str("XS205-2023-004"),
			Location:     str("Laboratório Principal"),
			Description:  str("Balança analítica com precisão de 0.01mg"),
		},
		{
			Name:         "pHmetro Portátil",
			Category:     "equipamento",
			Brand:        str("Hanna Instruments"),
			Model:        str("HI98128"),
			SerialNumber: str("HI98128-2023-005"),
			Location:     str("Laboratório Principal"),
			Description:  str("Medidor de pH portátil com compensação de temperatura"),
		},
	})
}

func seedProtocols(db *gorm.DB) {
	create(db, "protocols", []models.Protocol{
		{
			Name: "Inoculação de Substrato",
			Type: "inoculação",
			Steps: models.StringList{
				"Esterilizar substrato em autoclave a 121°C por 60min",
				"Resfriar substrato até temperatura ambiente",
				"Preparar inóculo em condições assépticas",
				"Inocular substrato com 5% de inóculo",
				"Misturar uniformemente",
				"Acondicionar em sacos plásticos",
				"Incubar a 25°C por 15 dias",
			},
			Duration:    num(60),
			Temperature: num(25),
			Equipment:   models.StringList{"autoclave", "balança", "pHmetro", "estufa"},
			Materials:   models.StringList{"substrato", "inóculo", "sacos plásticos", "algodão"},
			Description: str("Protocolo padrão para inoculação de substrato com micélio"),
		},
		{
			Name: "Transferência de Cultura",
			Type: "transferência",
			Steps: models.StringList{
				"Preparar meio de cultura estéril",
				"Abrir placa fonte em condições assépticas",
				"Selecionar micélio saudável",
				"Transferir fragmento para nova placa",
				"Sellar placa com fita adesiva",
				"Identificar com etiqueta",
				"Incubar a temperatura adequada",
			},
			Duration:    num(15),
			Temperature: num(25),
			Equipment:   models.StringList{"microscópio", "bico de Bunsen", "pinça"},
			Materials:   models.StringList{"placas Petri", "meio de cultura", "fita adesiva", "etiquetas"},
			Description: str("Protocolo para transferência asséptica de culturas"),
		},
		{
			Name: "Análise de Contaminação",
			Type: "análise",
			Steps: models.StringList{
				"Coletar amostra representativa",
				"Preparar suspensão em solução salina",
				"Fazer diluições seriadas",
				"Semear em placas de ágar",
				"Incubar por 48-72h",
				"Contar colônias",
				"Calcular UFC/g de substrato",
			},
			Duration:    num(180),
			Temperature: num(30),
			Equipment:   models.StringList{"microscópio", "pipetas", "estufa", "contador de colônias"},
			Materials:   models.StringList{"placas Petri", "solução salina", "meio de cultura"},
			Description: str("Protocolo para análise microbiológica de contaminação"),
		},
		{
			Name: "Colheita de Cogumelos",
			Type: "colheita",
			Steps: models.StringList{
				"Identificar estágio ideal de colheita",
				"Higienizar mãos e equipamentos",
				"Colher cogumelos com cuidado",
				"Remover substrato aderido",
				"Classificar por tamanho e qualidade",
				"Acondicionar em embalagens adequadas",
				"Armazenar em temperatura controlada",
			},
			Duration:    num(30),
			Temperature: num(15),
			Equipment:   models.StringList{"balança", "termômetro", "refrigerador"},
			Materials:   models.StringList{"embalagens", "etiquetas", "papel absorvente"},
			Description: str("Protocolo para colheita e pós-colheita de cogumelos"),
		},
	})
}
