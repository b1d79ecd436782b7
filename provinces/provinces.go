// Package provinces is a sample grid: the provinces of Java with their area
// and population.
package provinces

import (
	"colman"
	nt "colman/entity"
)

// GridId identifies the sample grid's settings.
const GridId = "ProvincesGrid"

const width = "60px"

// Field indexes into a province line.
const (
	provinceName = iota
	capital
	area
	areaPercent
	population2000
	population2010
	population2020
	populationEstimate2021
	populationDensity2021
)

// Fields describes a province row in duck types.
var Fields = []nt.Field{
	{Name: "PROVINCE_NAME", Type: "VARCHAR"},
	{Name: "CAPITAL", Type: "VARCHAR"},
	{Name: "AREA", Type: "DOUBLE"},
	{Name: "AREA_PERCENT", Type: "DOUBLE"},
	{Name: "POPULATION_2000", Type: "BIGINT"},
	{Name: "POPULATION_2010", Type: "BIGINT"},
	{Name: "POPULATION_2020", Type: "BIGINT"},
	{Name: "POPULATION_ESTIMATE_2021", Type: "BIGINT"},
	{Name: "POPULATION_DENSITY_2021", Type: "BIGINT"},
}

// Rows returns the sample rows in Fields order.
func Rows() [][]any {
	return [][]any{
		{"Banten", "Serang", 9662.92, 7.1, int64(8098277), int64(10632166), int64(11904562), int64(12061475), int64(1248)},
		{"DKI Jakarta", "–", 664.01, 0.5, int64(8361079), int64(9607787), int64(10562088), int64(10609681), int64(15978)},
		{"West Java", "Bandung", 35377.76, 27.1, int64(35724093), int64(43053732), int64(48274160), int64(48782402), int64(1379)},
		{"Western Java (3 areas above)", "", 45704.69, 34.7, int64(52183449), int64(63293685), int64(70740810), int64(71453558), int64(1563)},
		{"Central Java", "Semarang", 32800.69, 25.3, int64(31223258), int64(32382657), int64(36516035), int64(36742501), int64(1120)},
		{"Yogyakarta", "Yogyakarta", 3133.15, 2.4, int64(3121045), int64(3457491), int64(3668719), int64(3712896), int64(1185)},
		{"Central Java Region (2 areas above)", "", 35933.84, 27.7, int64(34344303), int64(35840148), int64(40184754), int64(40455397), int64(1126)},
		{"East Java", "Surabaya", 47799.75, 37.3, int64(34765993), int64(37476757), int64(40665696), int64(40878790), int64(855)},
		{"Region Administered as Java", "Jakarta", 129438.28, 100.0, int64(121293745), int64(136610590), int64(151591260), int64(152787745), int64(1180)},
		{"Madura Island of East Java", "–", 5025.30, 3.3, int64(3230300), int64(3622763), int64(4004564), int64(4031060), int64(802)},
		{"Java Island", "–", 124412.98, 96.7, int64(118063445), int64(132987827), int64(147586696), int64(148756685), int64(1196)},
	}
}

// Registrar takes column registrations.
type Registrar interface {
	Register(id string, header nt.Header, populateKey, populateHeader bool, bp colman.Blueprint)
	RegisterText(id, header string, bp colman.Blueprint)
}

// Register registers the sample's columns; the first four are frozen.
func Register(reg Registrar) {

	reg.RegisterText("PROVINCE_NAME", "Province or Special Region", column(provinceName, true))
	reg.Register("PROVINCE_NAME_FILTER", filterHeader("Province or Special Region / F"), true, true, column(provinceName, true))
	reg.RegisterText("CAPITAL", "Capital", column(capital, true))
	reg.RegisterText("AREA", "Area", column(area, true))
	reg.RegisterText("AREA_PERCENT", "Area %", column(areaPercent, false))
	reg.RegisterText("POPULATION_2000", "Population census 2000", column(population2000, false))
	reg.RegisterText("POPULATION_2010", "Population census 2010", column(population2010, false))
	reg.RegisterText("POPULATION_2020", "Population census 2020", column(population2020, false))
	reg.RegisterText("POPULATION_ESTIMATE_2021", "Population estimate mid 2021", column(populationEstimate2021, false))
	reg.RegisterText("POPULATION_DENSITY_2021", "Population density mid 2021", column(populationDensity2021, false))
}

// unexported

func column(idx int, frozen bool) colman.Def {
	return colman.Def{
		Accessor:  nt.FieldAccessor(idx),
		Width:     width,
		Sortable:  true,
		Resizable: true,
		Frozen:    frozen,
	}
}

// filterHeader stands in for an input placed in the header, named in the
// visibility controls by its label.
func filterHeader(label string) nt.LabeledHeader {
	return nt.LabeledHeader{
		Content: label + ": ",
		Name:    label,
	}
}
