// FilePath: internal/models/models.enums.go
package models

// Role is the dashboard role a user acts in
type Role string

const (
	RoleFarmer Role = "farmer"
	RoleBuyer  Role = "buyer"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

// Roles lists every role in a stable order
var Roles = []Role{RoleFarmer, RoleBuyer, RoleVendor, RoleAdmin}

func (r Role) Valid() bool {
	switch r {
	case RoleFarmer, RoleBuyer, RoleVendor, RoleAdmin:
		return true
	}
	return false
}

// ParseRole converts a raw string into a Role
func ParseRole(s string) (Role, bool) {
	r := Role(s)
	return r, r.Valid()
}

type HealthStatus string

const (
	HealthHealthy    HealthStatus = "healthy"
	HealthSick       HealthStatus = "sick"
	HealthRecovering HealthStatus = "recovering"
)

var HealthStatuses = []HealthStatus{HealthHealthy, HealthSick, HealthRecovering}

func (h HealthStatus) Valid() bool {
	switch h {
	case HealthHealthy, HealthSick, HealthRecovering:
		return true
	}
	return false
}

type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

var OrderStatuses = []OrderStatus{OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered}

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusShipped, OrderStatusDelivered:
		return true
	}
	return false
}

// AnimalType is a livestock species
type AnimalType string

const (
	AnimalCattle  AnimalType = "cattle"
	AnimalSheep   AnimalType = "sheep"
	AnimalGoat    AnimalType = "goat"
	AnimalPig     AnimalType = "pig"
	AnimalChicken AnimalType = "chicken"
)

var AnimalTypes = []AnimalType{AnimalCattle, AnimalSheep, AnimalGoat, AnimalPig, AnimalChicken}

func (a AnimalType) Valid() bool {
	switch a {
	case AnimalCattle, AnimalSheep, AnimalGoat, AnimalPig, AnimalChicken:
		return true
	}
	return false
}

func ParseAnimalType(s string) (AnimalType, bool) {
	a := AnimalType(s)
	return a, a.Valid()
}

// Crop is a cultivated crop grown on a farm
type Crop string

const (
	CropMaize         Crop = "Maize"
	CropCassava       Crop = "Cassava"
	CropRice          Crop = "Rice"
	CropWheat         Crop = "Wheat"
	CropSoybeans      Crop = "Soybeans"
	CropGroundnuts    Crop = "Groundnuts"
	CropSunflower     Crop = "Sunflower"
	CropCotton        Crop = "Cotton"
	CropTobacco       Crop = "Tobacco"
	CropSorghum       Crop = "Sorghum"
	CropMillet        Crop = "Millet"
	CropSweetPotatoes Crop = "Sweet Potatoes"
	CropBeans         Crop = "Beans"
	CropCoffee        Crop = "Coffee"
)

var Crops = []Crop{
	CropMaize, CropCassava, CropRice, CropWheat, CropSoybeans, CropGroundnuts, CropSunflower,
	CropCotton, CropTobacco, CropSorghum, CropMillet, CropSweetPotatoes, CropBeans, CropCoffee,
}

func (c Crop) Valid() bool {
	for _, known := range Crops {
		if c == known {
			return true
		}
	}
	return false
}

func ParseCrop(s string) (Crop, bool) {
	c := Crop(s)
	return c, c.Valid()
}

// Province is one of the ten Zambian provinces
type Province string

const (
	ProvinceLusaka       Province = "Lusaka"
	ProvinceCopperbelt   Province = "Copperbelt"
	ProvinceCentral      Province = "Central"
	ProvinceEastern      Province = "Eastern"
	ProvinceNorthern     Province = "Northern"
	ProvinceSouthern     Province = "Southern"
	ProvinceWestern      Province = "Western"
	ProvinceNorthWestern Province = "North-Western"
	ProvinceLuapula      Province = "Luapula"
	ProvinceMuchinga     Province = "Muchinga"
)

var Provinces = []Province{
	ProvinceLusaka, ProvinceCopperbelt, ProvinceCentral, ProvinceEastern, ProvinceNorthern,
	ProvinceSouthern, ProvinceWestern, ProvinceNorthWestern, ProvinceLuapula, ProvinceMuchinga,
}

func (p Province) Valid() bool {
	for _, known := range Provinces {
		if p == known {
			return true
		}
	}
	return false
}

func ParseProvince(s string) (Province, bool) {
	p := Province(s)
	return p, p.Valid()
}

type ProductCategory string

const (
	CategorySeeds       ProductCategory = "Seeds"
	CategoryFertilizers ProductCategory = "Fertilizers"
	CategoryPesticides  ProductCategory = "Pesticides"
	CategoryEquipment   ProductCategory = "Equipment"
	CategoryFeed        ProductCategory = "Livestock Feed"
	CategoryProduce     ProductCategory = "Produce"
)

var ProductCategories = []ProductCategory{
	CategorySeeds, CategoryFertilizers, CategoryPesticides, CategoryEquipment, CategoryFeed, CategoryProduce,
}

func (c ProductCategory) Valid() bool {
	for _, known := range ProductCategories {
		if c == known {
			return true
		}
	}
	return false
}

func ParseProductCategory(s string) (ProductCategory, bool) {
	c := ProductCategory(s)
	return c, c.Valid()
}

type Pest string

const (
	PestFallArmyworm Pest = "Fall Armyworm"
	PestAphids       Pest = "Aphids"
	PestStalkBorer   Pest = "Maize Stalk Borer"
	PestCutworm      Pest = "Cutworm"
	PestWhitefly     Pest = "Whitefly"
	PestLocust       Pest = "Red Locust"
)

var Pests = []Pest{PestFallArmyworm, PestAphids, PestStalkBorer, PestCutworm, PestWhitefly, PestLocust}

func (p Pest) Valid() bool {
	for _, known := range Pests {
		if p == known {
			return true
		}
	}
	return false
}

// Season is one of the three Zambian agricultural seasons
type Season string

const (
	SeasonRainy   Season = "rainy"
	SeasonCoolDry Season = "cool-dry"
	SeasonHotDry  Season = "hot-dry"
)

var Seasons = []Season{SeasonRainy, SeasonCoolDry, SeasonHotDry}

func (s Season) Valid() bool {
	switch s {
	case SeasonRainy, SeasonCoolDry, SeasonHotDry:
		return true
	}
	return false
}
