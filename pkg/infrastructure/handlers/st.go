package handlers

import "github.com/vsinha/mpn/pkg/domain/entities"

var stPackages = map[string]string{
	"T": "LQFP",
	"H": "BGA",
	"U": "UFQFPN",
	"Y": "WLCSP",
	"P": "TSSOP",
	"I": "UFBGA",
	"K": "UFBGA",
	"M": "SO",
}

var stSensorFacts = map[string]entities.ExtractedAttributes{
	"LIS3DH":    sensorFacts("acceleration", "I2C,SPI", "LGA16"),
	"LIS2DH12":  sensorFacts("acceleration", "I2C,SPI", "LGA12"),
	"LIS3MDL":   sensorFacts("magnetic-field", "I2C,SPI", "LGA12"),
	"LSM6DSO":   sensorFacts("acceleration,angular-rate", "I2C,SPI", "LGA14"),
	"LSM6DSOX":  sensorFacts("acceleration,angular-rate", "I2C,SPI", "LGA14"),
	"LSM6DS3":   sensorFacts("acceleration,angular-rate", "I2C,SPI", "LGA14"),
	"LSM303AGR": sensorFacts("acceleration,magnetic-field", "I2C,SPI", "LGA12"),
	"LPS22HB":   sensorFacts("pressure", "I2C,SPI", "HLGA10"),
	"LPS25HB":   sensorFacts("pressure", "I2C,SPI", "HLGA10"),
	"HTS221":    sensorFacts("humidity,temperature", "I2C,SPI", "HLGA6"),
}

// stmShape decodes STM32 and STM8 order codes, which share the
// pins/flash/package/temperature tail
func stmShape(name, series string, line string) Shape {
	return Shape{
		Name:  name,
		Types: []entities.ComponentType{entities.MicrocontrollerST},
		Expr:  `(?P<series>` + series + `)(?P<line>` + line + `)(?P<rating>[A-Z][0-9A-Z])(?P<pkg>[A-Z])(?P<temp>\d)(?P<suffix>[0-9A-Z]*)`,
		Fields: []Field{
			{Attr: entities.AttrSeries, Group: GroupSeries, Append: []string{"line"}},
			{Attr: entities.AttrPinCount, Group: GroupRating, To: 1, Table: stm32PinCodes},
			{Attr: entities.AttrMemoryCode, Group: GroupRating, From: 1},
			{Attr: entities.AttrPackageCode, Group: GroupPkg, Table: stPackages},
			{Attr: entities.AttrTemperatureGrade, Group: "temp"},
		},
	}
}

func stDefinition() Definition {
	return Definition{
		ID:      entities.STMicro,
		Name:    "STMicroelectronics",
		Aliases: []string{"ST", "STMicro", "ST Microelectronics"},
		Patterns: []PatternDef{
			{Type: entities.MicrocontrollerST, Expr: `STM32[A-Z]\d{3}`},
			{Type: entities.MicrocontrollerST, Expr: `STM8[A-Z]\d{3}`},
			{Type: entities.SensorST, Expr: `LIS\d[A-Z]`},
			{Type: entities.SensorST, Expr: `LSM\d[A-Z]`},
			{Type: entities.SensorST, Expr: `LPS\d{2}[A-Z]`},
			{Type: entities.SensorST, Expr: `HTS221`},
		},
		Shapes: []Shape{
			// STM32F103C8T6: F1 line 03, 48 pins, 64 KB, LQFP, -40..85
			stmShape("stm32", `STM32[A-Z]\d`, `\d{2}`),
			stmShape("stm8", `STM8[A-Z]`, `\d{3}`),
			{
				Name:     "mems-sensor",
				Types:    []entities.ComponentType{entities.SensorST},
				Expr:     `(?P<series>LIS|LSM|LPS|HTS)(?P<rating>\d[0-9A-Z]*)`,
				FactsKey: []string{GroupSeries, GroupRating},
				Facts:    stSensorFacts,
			},
		},
		Packaging: []entities.SuffixRule{
			{Name: "st-tape", Guard: `^(STM32|STM8|LIS|LSM|LPS|HTS)`, Pattern: `TR$`},
		},
	}
}
