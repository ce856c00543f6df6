package params

import "github.com/itsatony/agrisynth/internal/models"

// ProvinceParams are the climate baselines and towns of a province
type ProvinceParams struct {
	Temperature float64 // degrees Celsius
	Humidity    float64 // percent
	Cities      []string
}

var provinces = map[models.Province]ProvinceParams{
	models.ProvinceLusaka:       {Temperature: 22, Humidity: 55, Cities: []string{"Lusaka", "Chongwe", "Kafue", "Chilanga"}},
	models.ProvinceCopperbelt:   {Temperature: 21, Humidity: 60, Cities: []string{"Ndola", "Kitwe", "Chingola", "Mufulira", "Luanshya"}},
	models.ProvinceCentral:      {Temperature: 22, Humidity: 55, Cities: []string{"Kabwe", "Kapiri Mposhi", "Mkushi", "Serenje"}},
	models.ProvinceEastern:      {Temperature: 23, Humidity: 58, Cities: []string{"Chipata", "Petauke", "Katete", "Lundazi"}},
	models.ProvinceNorthern:     {Temperature: 20, Humidity: 65, Cities: []string{"Kasama", "Mbala", "Mporokoso", "Luwingu"}},
	models.ProvinceSouthern:     {Temperature: 24, Humidity: 50, Cities: []string{"Livingstone", "Choma", "Mazabuka", "Monze"}},
	models.ProvinceWestern:      {Temperature: 25, Humidity: 48, Cities: []string{"Mongu", "Senanga", "Kaoma", "Sesheke"}},
	models.ProvinceNorthWestern: {Temperature: 21, Humidity: 62, Cities: []string{"Solwezi", "Kasempa", "Mwinilunga", "Zambezi"}},
	models.ProvinceLuapula:      {Temperature: 22, Humidity: 68, Cities: []string{"Mansa", "Kawambwa", "Nchelenge", "Samfya"}},
	models.ProvinceMuchinga:     {Temperature: 20, Humidity: 63, Cities: []string{"Chinsali", "Mpika", "Nakonde", "Isoka"}},
}

// StreetNames feed generated postal addresses
var StreetNames = []string{
	"Cairo Road", "Independence Avenue", "Great East Road", "Kafue Road", "Church Road",
	"Lumumba Road", "Freedom Way", "Addis Ababa Drive", "Chachacha Road", "Makeni Road",
	"Great North Road", "Mumbwa Road",
}
