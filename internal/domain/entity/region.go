package entity

// Province is the top level of the Thai administrative hierarchy.
type Province struct {
	ID     int    `json:"id"`
	NameTH string `json:"name_th"`
	NameEN string `json:"name_en"`
}

// Amphure is a district within a province.
type Amphure struct {
	ID         int    `json:"id"`
	NameTH     string `json:"name_th"`
	NameEN     string `json:"name_en"`
	ProvinceID int    `json:"province_id"`
}

// Tambon is a subdistrict within an amphure.
type Tambon struct {
	ID        int    `json:"id"`
	NameTH    string `json:"name_th"`
	NameEN    string `json:"name_en"`
	AmphureID int    `json:"amphure_id"`
	ZipCode   int    `json:"zip_code"`
}

// RegionData bundles the full reference hierarchy for the bulk endpoint.
type RegionData struct {
	Provinces []Province `json:"provinces"`
	Amphures  []Amphure  `json:"amphures"`
	Tambons   []Tambon   `json:"tambons"`
}
