package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"insurhub/internal/core"
	"insurhub/internal/platform/config"
	"insurhub/internal/platform/logging"
	"insurhub/internal/store/mongo"
)

func main() {
	cfg := config.MustLoad()
	log := logging.New(cfg.Env)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	// Connect to Mongo
	client, err := mongo.NewClient(cfg)
	if err != nil {
		log.Error("failed to connect to MongoDB", "err", err)
		return
	}
	defer client.Close(ctx)

	if err := mongo.EnsureIndexes(ctx, client.DB); err != nil {
		log.Warn("failed to ensure indexes", "err", err)
	}

	db := client.DB
	opTimeout := 5 * time.Second
	lifeRepo := mongo.NewLifeRepo(db, opTimeout)
	propertyRepo := mongo.NewPropertyRepo(db, opTimeout)
	vehicleRepo := mongo.NewVehicleRepo(db, opTimeout)

	log.Info("seeding records")

	seedLife(ctx, lifeRepo)
	seedProperty(ctx, propertyRepo)
	seedVehicle(ctx, vehicleRepo)

	log.Info("done seeding")
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedLife(ctx context.Context, repo core.Repo[core.LifeInsurance]) {
	records := []core.LifeInsurance{
		{
			FirstName:       "Anna",
			FamilyName:      "Schmidt",
			ZipCode:         "10115",
			City:            "Berlin",
			Address:         "Invalidenstr. 44",
			Telephone:       "+49 30 1234567",
			Email:           "anna.schmidt@example.com",
			Type:            core.TypeLife,
			Duration:        48,
			PaymentPerMonth: money("100.00"),
			StartDate:       core.NewDate(2024, 1, 1),
			EndDate:         core.NewDate(2028, 1, 1),
			HasHealthIssues: false,
		},
		{
			FirstName:              "Jonas",
			FamilyName:             "Weber",
			ZipCode:                "80331",
			City:                   "Munich",
			Address:                "Sendlinger Str. 8",
			Telephone:              "+49 89 7654321",
			Email:                  "jonas.weber@example.com",
			Type:                   core.TypeLife,
			Duration:               120,
			PaymentPerMonth:        money("62.50"),
			StartDate:              core.NewDate(2023, 6, 15),
			EndDate:                core.NewDate(2033, 6, 15),
			HasHealthIssues:        true,
			HealthConditionDetails: "Mild asthma, under treatment",
		},
	}
	for _, rec := range records {
		insert(ctx, repo, rec)
	}
}

func seedProperty(ctx context.Context, repo core.Repo[core.PropertyInsurance]) {
	records := []core.PropertyInsurance{
		{
			FirstName:        "Maria",
			FamilyName:       "Keller",
			ZipCode:          "50667",
			City:             "Cologne",
			Address:          "Domkloster 3",
			Telephone:        "+49 221 556677",
			Email:            "maria.keller@example.com",
			Type:             core.TypeProperty,
			Duration:         12,
			PaymentPerMonth:  money("35.90"),
			StartDate:        core.NewDate(2024, 3, 1),
			EndDate:          core.NewDate(2025, 3, 1),
			PropertyType:     "APARTMENT",
			PropertyAddress:  "Domkloster 3, 50667 Cologne",
			ConstructionYear: 1998,
		},
	}
	for _, rec := range records {
		insert(ctx, repo, rec)
	}
}

func seedVehicle(ctx context.Context, repo core.Repo[core.VehicleInsurance]) {
	records := []core.VehicleInsurance{
		{
			FirstName:          "Lukas",
			FamilyName:         "Brandt",
			ZipCode:            "20095",
			City:               "Hamburg",
			Address:            "Moenckebergstr. 17",
			Telephone:          "+49 40 998877",
			Email:              "lukas.brandt@example.com",
			Type:               core.TypeVehicle,
			Duration:           24,
			PaymentPerMonth:    money("89.00"),
			StartDate:          core.NewDate(2024, 5, 20),
			EndDate:            core.NewDate(2026, 5, 20),
			VehicleMake:        "Volkswagen",
			VehicleModel:       "Golf",
			VehicleYear:        2021,
			LicensePlateNumber: "HH-LB 4821",
		},
	}
	for _, rec := range records {
		insert(ctx, repo, rec)
	}
}

func insert[R core.Entity[R]](ctx context.Context, repo core.Repo[R], rec R) {
	saved, err := repo.Insert(ctx, rec)
	if err != nil {
		fmt.Printf("failed to seed record: %v\n", err)
		return
	}
	first, family := saved.HolderName()
	fmt.Printf("seeded: %s %s (%s)\n", first, family, saved.GetID())
}
