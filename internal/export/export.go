// Package export renders a dataset as an XLSX workbook with one sheet per collection
package export

import (
	"fmt"
	"io"
	"sort"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/itsatony/agrisynth/internal/models"
)

// ContentType of the rendered workbook
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names in workbook order
const (
	SheetSummary         = "Summary"
	SheetUsers           = "Users"
	SheetFarms           = "Farms"
	SheetSensorReadings  = "SensorReadings"
	SheetPestDetections  = "PestDetections"
	SheetLivestock       = "Livestock"
	SheetLivestockHealth = "LivestockHealth"
	SheetProducts        = "Products"
	SheetOrders          = "Orders"
)

type sheet struct {
	name   string
	header []string
	rows   [][]interface{}
}

// WriteWorkbook writes the dataset as XLSX to w
func WriteWorkbook(w io.Writer, ds *models.Dataset) error {
	f, err := NewWorkbook(ds)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// NewWorkbook builds the workbook in memory. The caller closes the file.
func NewWorkbook(ds *models.Dataset) (*excelize.File, error) {
	f := excelize.NewFile()
	sheets := buildSheets(ds)

	for i, s := range sheets {
		if i == 0 {
			if err := f.SetSheetName("Sheet1", s.name); err != nil {
				f.Close()
				return nil, fmt.Errorf("rename sheet: %w", err)
			}
		} else if _, err := f.NewSheet(s.name); err != nil {
			f.Close()
			return nil, fmt.Errorf("create sheet %s: %w", s.name, err)
		}
		if err := writeSheet(f, s); err != nil {
			f.Close()
			return nil, err
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}

func writeSheet(f *excelize.File, s sheet) error {
	header := make([]interface{}, len(s.header))
	for i, h := range s.header {
		header[i] = h
	}
	if err := f.SetSheetRow(s.name, "A1", &header); err != nil {
		return fmt.Errorf("write %s header: %w", s.name, err)
	}
	for i, row := range s.rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(s.name, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", s.name, i+2, err)
		}
	}
	return f.SetPanes(s.name, &excelize.Panes{Freeze: true, YSplit: 1, TopLeftCell: "A2", ActivePane: "bottomLeft"})
}

func ts(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func buildSheets(ds *models.Dataset) []sheet {
	summary := ds.Summary()
	summarySheet := sheet{name: SheetSummary, header: []string{"metric", "value"}}
	summarySheet.rows = append(summarySheet.rows,
		[]interface{}{"datasetId", ds.ID},
		[]interface{}{"seed", fmt.Sprint(ds.Seed)},
		[]interface{}{"generatedAt", ts(ds.GeneratedAt)},
		[]interface{}{"totalRevenue", models.FormatPrice(summary.TotalRevenue)},
		[]interface{}{"pestAlerts", summary.PestAlerts},
	)
	keys := make([]string, 0, len(summary.Counts))
	for k := range summary.Counts {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		summarySheet.rows = append(summarySheet.rows, []interface{}{"count." + k, summary.Counts[k]})
	}

	users := sheet{name: SheetUsers, header: []string{"id", "email", "name", "role", "phone", "address", "province", "city", "createdAt", "updatedAt"}}
	for _, u := range ds.Users {
		users.rows = append(users.rows, []interface{}{u.ID, u.Email, u.Name, string(u.Role), u.Phone, u.Address, string(u.Province), u.City, ts(u.CreatedAt), ts(u.UpdatedAt)})
	}

	farms := sheet{name: SheetFarms, header: []string{"id", "name", "location", "size", "cropType", "ownerId", "province", "createdAt", "updatedAt"}}
	for _, fm := range ds.Farms {
		farms.rows = append(farms.rows, []interface{}{fm.ID, fm.Name, fm.Location, fm.Size, string(fm.CropType), fm.OwnerID, string(fm.Province), ts(fm.CreatedAt), ts(fm.UpdatedAt)})
	}

	readings := sheet{name: SheetSensorReadings, header: []string{"id", "farmId", "soilMoisture", "temperature", "humidity", "phLevel", "nitrogen", "phosphorus", "potassium", "timestamp"}}
	for _, r := range ds.SensorReadings {
		readings.rows = append(readings.rows, []interface{}{r.ID, r.FarmID, r.SoilMoisture, r.Temperature, r.Humidity, r.PhLevel, r.Nitrogen, r.Phosphorus, r.Potassium, ts(r.Timestamp)})
	}

	pests := sheet{name: SheetPestDetections, header: []string{"id", "farmId", "imageUrl", "detectedPest", "confidence", "recommendation", "timestamp"}}
	for _, p := range ds.PestDetections {
		pests.rows = append(pests.rows, []interface{}{p.ID, p.FarmID, p.ImageURL, string(p.DetectedPest), p.Confidence, p.Recommendation, ts(p.Timestamp)})
	}

	livestock := sheet{name: SheetLivestock, header: []string{"id", "farmId", "name", "type", "breed", "age", "weight", "healthStatus", "lastHealthCheck", "nextVaccination", "createdAt", "updatedAt"}}
	for _, l := range ds.Livestock {
		livestock.rows = append(livestock.rows, []interface{}{l.ID, l.FarmID, l.Name, string(l.Type), l.Breed, l.Age, l.Weight, string(l.HealthStatus), ts(l.LastHealthCheck), ts(l.NextVaccination), ts(l.CreatedAt), ts(l.UpdatedAt)})
	}

	health := sheet{name: SheetLivestockHealth, header: []string{"id", "animalId", "temperature", "activityLevel", "foodIntake", "waterIntake", "notes", "timestamp"}}
	for _, h := range ds.LivestockHealth {
		health.rows = append(health.rows, []interface{}{h.ID, h.AnimalID, h.Temperature, h.ActivityLevel, h.FoodIntake, h.WaterIntake, h.Notes, ts(h.Timestamp)})
	}

	products := sheet{name: SheetProducts, header: []string{"id", "name", "description", "price", "quantity", "vendorId", "category", "imageUrl", "currency", "createdAt", "updatedAt"}}
	for _, p := range ds.Products {
		products.rows = append(products.rows, []interface{}{p.ID, p.Name, p.Description, p.Price.InexactFloat64(), p.Quantity, p.VendorID, string(p.Category), p.ImageURL, p.Currency, ts(p.CreatedAt), ts(p.UpdatedAt)})
	}

	orders := sheet{name: SheetOrders, header: []string{"id", "buyerId", "productId", "quantity", "totalPrice", "status", "currency", "createdAt", "updatedAt"}}
	for _, o := range ds.Orders {
		orders.rows = append(orders.rows, []interface{}{o.ID, o.BuyerID, o.ProductID, o.Quantity, o.TotalPrice.InexactFloat64(), string(o.Status), o.Currency, ts(o.CreatedAt), ts(o.UpdatedAt)})
	}

	return []sheet{summarySheet, users, farms, readings, pests, livestock, health, products, orders}
}
