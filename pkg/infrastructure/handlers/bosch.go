package handlers

import "github.com/vsinha/mpn/pkg/domain/entities"

var boschFacts = map[string]entities.ExtractedAttributes{
	"BME280": sensorFacts("humidity,pressure,temperature", "I2C,SPI", "LGA8"),
	"BME680": sensorFacts("gas,humidity,pressure,temperature", "I2C,SPI", "LGA8"),
	"BMP280": sensorFacts("pressure,temperature", "I2C,SPI", "LGA8"),
	"BMP388": sensorFacts("pressure,temperature", "I2C,SPI", "LGA10"),
	"BMP390": sensorFacts("pressure,temperature", "I2C,SPI", "LGA10"),
	"BMI160": sensorFacts("acceleration,angular-rate", "I2C,SPI", "LGA14"),
	"BMI270": sensorFacts("acceleration,angular-rate", "I2C,SPI", "LGA14"),
	"BMA400": sensorFacts("acceleration", "I2C,SPI", "LGA12"),
	"BMM150": sensorFacts("magnetic-field", "I2C,SPI", "WLCSP12"),
	"BMX055": sensorFacts("acceleration,angular-rate,magnetic-field", "I2C,SPI", "LGA20"),
	"BNO055": sensorFacts("acceleration,angular-rate,magnetic-field", "I2C,UART", "LGA28"),
}

func boschDefinition() Definition {
	return Definition{
		ID:      entities.Bosch,
		Name:    "Bosch Sensortec",
		Aliases: []string{"Bosch", "Robert Bosch"},
		Patterns: []PatternDef{
			{Type: entities.SensorBosch, Expr: `BM[EPAIGXM]\d{3}`},
			{Type: entities.SensorBosch, Expr: `BNO\d{3}`},
		},
		Shapes: []Shape{
			{
				Name:     "bosch-sensor",
				Types:    []entities.ComponentType{entities.SensorBosch},
				Expr:     `(?P<series>BME|BMP|BMA|BMI|BMG|BMX|BMM|BNO)(?P<rating>\d{3})(?P<suffix>[0-9A-Z-]*)`,
				FactsKey: []string{GroupSeries, GroupRating},
				Facts:    boschFacts,
			},
		},
	}
}
