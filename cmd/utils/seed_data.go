package main

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"pnrquality-service/internal/domain/entity"
	"pnrquality-service/internal/infrastructure/config"
	"pnrquality-service/internal/infrastructure/persistence"
	"pnrquality-service/internal/interface/repository"
	"pnrquality-service/pkg/logger"
)

// Seeds the office reference table and stages one randomized import batch
// for the server to pick up. Meant for local development and demos.

var (
	officeIDs   = []string{"KQ001", "KQ002", "KQ003", "WEB001", "MOB001", "CC001"}
	companies   = []string{"AMADEUS", "SABRE", "GALILEO"}
	locations   = []string{"NBO", "MBA", "LHR", "AMS"}
	mealCodes   = []string{"VGML", "KSML", "MOML", "AVML", ""}
	seatColumns = "ABCDEF"
	surnames    = []string{"DOE", "SMITH", "KAMAU", "OTIENO", "WANJIKU", "MUTUA"}
	firstNames  = []string{"JOHN", "JANE", "PETER", "MARY", "JAMES", "GRACE"}
)

func main() {
	log := logger.NewLogger()
	log.Info("Seeding sample data")

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	ctx := context.Background()

	gormDB, err := persistence.NewPostgresDB(cfg.PostgresDSN)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}
	if err := repository.AutoMigrate(gormDB); err != nil {
		log.Fatal("Failed to migrate schema", "error", err)
	}

	mongoClient, err := persistence.NewMongoClient(ctx, cfg.MongoURI, cfg.MongoUser, cfg.MongoPassword)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	defer mongoClient.Disconnect(ctx)
	mongoDB := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	officeRepo := repository.NewGormOfficeRepository(gormDB)
	batchRepo := repository.NewMongoImportBatchRepository(mongoDB)

	for i, officeID := range officeIDs {
		office := &entity.Office{
			OfficeID: officeID,
			Name:     fmt.Sprintf("KQ Office %d", i+1),
			Location: locations[i%len(locations)],
			Manager:  "Office Manager",
		}
		if err := officeRepo.Upsert(ctx, office); err != nil {
			log.Fatal("Failed to seed office", "officeId", officeID, "error", err)
		}
	}
	log.Info("Seeded offices", "count", len(officeIDs))

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	rows := generateRows(rng, 500)

	batch := &entity.ImportBatch{
		BatchID: fmt.Sprintf("seed-%d", time.Now().Unix()),
		Source:  "seed_data",
		Rows:    rows,
	}
	if err := batchRepo.Save(ctx, batch); err != nil {
		log.Fatal("Failed to stage seed batch", "error", err)
	}

	log.Info("Staged seed batch", "batchId", batch.BatchID, "rows", len(rows))
}

func generateRows(rng *rand.Rand, count int) []entity.ImportRow {
	rows := make([]entity.ImportRow, 0, count)
	for i := 0; i < count; i++ {
		controlNumber := fmt.Sprintf("KQ%06d", rng.Intn(300)) // duplicates on purpose
		creationDate := time.Now().AddDate(0, 0, -rng.Intn(30)).Format("020106")

		row := entity.ImportRow{
			ControlNumber:          controlNumber,
			Surname:                surnames[rng.Intn(len(surnames))],
			FirstName:              firstNames[rng.Intn(len(firstNames))],
			OfficeID:               officeIDs[rng.Intn(len(officeIDs))],
			Agent:                  fmt.Sprintf("AGENT%02d", rng.Intn(20)),
			CreationDate:           creationDate,
			DeliverySystemCompany:  companies[rng.Intn(len(companies))],
			DeliverySystemLocation: locations[rng.Intn(len(locations))],
		}

		if rng.Float64() > 0.4 {
			row.FFNumber = fmt.Sprintf("KQ%08d", rng.Intn(100000000))
		}
		row.Meal = mealCodes[rng.Intn(len(mealCodes))]
		if rng.Float64() > 0.4 {
			row.SeatRowNumber = fmt.Sprintf("%d", 1+rng.Intn(30))
			row.SeatColumn = string(seatColumns[rng.Intn(len(seatColumns))])
		}

		row.ContactType = entity.ContactTypes[rng.Intn(len(entity.ContactTypes))]
		row.ContactDetail = randomContactDetail(rng)

		rows = append(rows, row)
	}
	return rows
}

func randomContactDetail(rng *rand.Rand) string {
	switch rng.Intn(5) {
	case 0:
		return fmt.Sprintf("passenger%d@example.com", rng.Intn(1000))
	case 1:
		// "//" as the "@" substitute some delivery systems emit
		return fmt.Sprintf("passenger%d//example.com", rng.Intn(1000))
	case 2:
		return fmt.Sprintf("+2547%08d", rng.Intn(100000000))
	case 3:
		return fmt.Sprintf("KQ/M+2547%08d/EN", rng.Intn(100000000))
	default:
		return "" // missing contact detail
	}
}
