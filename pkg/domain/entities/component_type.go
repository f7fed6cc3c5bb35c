package entities

import "strings"

// ComponentType is the classification tag assigned to an MPN. Base tags name
// a broad kind of part; manufacturer-qualified variants refine a base tag
// without replacing it.
type ComponentType int

const (
	Unknown ComponentType = iota
	Resistor
	Capacitor
	Inductor
	Diode
	Transistor
	MOSFET
	LED
	Connector
	Microcontroller
	Sensor
	RFIC
	LogicIC
	OpAmp
	VoltageRegulator
	Crystal

	// Manufacturer-qualified variants
	ResistorVishay
	ResistorYageo
	CapacitorMurata
	CapacitorKemet
	DiodeNexperia
	TransistorNexperia
	MOSFETNexperia
	MOSFETInfineon
	MOSFETOnsemi
	LEDWurth
	ConnectorWurth
	ConnectorMolex
	ConnectorTE
	MicrocontrollerRenesasRL78
	MicrocontrollerRenesasRX
	MicrocontrollerST
	MicrocontrollerMicrochip
	MicrocontrollerNXP
	SensorBosch
	SensorST
	SensorTI
	RFICNordic
	RFICSkyworks
	RFICQorvo
	RFICTI
	LogicTI
	LogicNexperia
	RegulatorTI
)

// Category groups base types that share one similarity calculator
type Category int

const (
	CategoryOther Category = iota
	CategoryResistor
	CategoryCapacitor
	CategoryInductor
	CategoryDiscrete
	CategoryConnector
	CategoryMicrocontroller
	CategorySensor
	CategoryRF
	CategoryLogic
	CategoryAnalog
)

// String method for Category enum
func (c Category) String() string {
	switch c {
	case CategoryResistor:
		return "resistor"
	case CategoryCapacitor:
		return "capacitor"
	case CategoryInductor:
		return "inductor"
	case CategoryDiscrete:
		return "discrete"
	case CategoryConnector:
		return "connector"
	case CategoryMicrocontroller:
		return "microcontroller"
	case CategorySensor:
		return "sensor"
	case CategoryRF:
		return "rf"
	case CategoryLogic:
		return "logic"
	case CategoryAnalog:
		return "analog"
	default:
		return "other"
	}
}

// ParseCategory resolves a category name as produced by Category.String
func ParseCategory(s string) (Category, bool) {
	name := strings.ToLower(strings.TrimSpace(s))
	for c := CategoryOther; c <= CategoryAnalog; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return CategoryOther, false
}

type typeInfo struct {
	name         string
	base         ComponentType
	manufacturer ManufacturerID
}

var typeTable = map[ComponentType]typeInfo{
	Unknown:          {name: "UNKNOWN"},
	Resistor:         {name: "RESISTOR"},
	Capacitor:        {name: "CAPACITOR"},
	Inductor:         {name: "INDUCTOR"},
	Diode:            {name: "DIODE"},
	Transistor:       {name: "TRANSISTOR"},
	MOSFET:           {name: "MOSFET"},
	LED:              {name: "LED"},
	Connector:        {name: "CONNECTOR"},
	Microcontroller:  {name: "MICROCONTROLLER"},
	Sensor:           {name: "SENSOR"},
	RFIC:             {name: "RF_IC"},
	LogicIC:          {name: "LOGIC_IC"},
	OpAmp:            {name: "OP_AMP"},
	VoltageRegulator: {name: "VOLTAGE_REGULATOR"},
	Crystal:          {name: "CRYSTAL"},

	ResistorVishay:             {name: "RESISTOR_VISHAY", base: Resistor, manufacturer: Vishay},
	ResistorYageo:              {name: "RESISTOR_YAGEO", base: Resistor, manufacturer: Yageo},
	CapacitorMurata:            {name: "CAPACITOR_MURATA", base: Capacitor, manufacturer: Murata},
	CapacitorKemet:             {name: "CAPACITOR_KEMET", base: Capacitor, manufacturer: Kemet},
	DiodeNexperia:              {name: "DIODE_NEXPERIA", base: Diode, manufacturer: Nexperia},
	TransistorNexperia:         {name: "TRANSISTOR_NEXPERIA", base: Transistor, manufacturer: Nexperia},
	MOSFETNexperia:             {name: "MOSFET_NEXPERIA", base: MOSFET, manufacturer: Nexperia},
	MOSFETInfineon:             {name: "MOSFET_INFINEON", base: MOSFET, manufacturer: Infineon},
	MOSFETOnsemi:               {name: "MOSFET_ONSEMI", base: MOSFET, manufacturer: Onsemi},
	LEDWurth:                   {name: "LED_WURTH", base: LED, manufacturer: Wurth},
	ConnectorWurth:             {name: "CONNECTOR_WURTH", base: Connector, manufacturer: Wurth},
	ConnectorMolex:             {name: "CONNECTOR_MOLEX", base: Connector, manufacturer: Molex},
	ConnectorTE:                {name: "CONNECTOR_TE", base: Connector, manufacturer: TEConnectivity},
	MicrocontrollerRenesasRL78: {name: "MICROCONTROLLER_RENESAS_RL78", base: Microcontroller, manufacturer: Renesas},
	MicrocontrollerRenesasRX:   {name: "MICROCONTROLLER_RENESAS_RX", base: Microcontroller, manufacturer: Renesas},
	MicrocontrollerST:          {name: "MICROCONTROLLER_ST", base: Microcontroller, manufacturer: STMicro},
	MicrocontrollerMicrochip:   {name: "MICROCONTROLLER_MICROCHIP", base: Microcontroller, manufacturer: Microchip},
	MicrocontrollerNXP:         {name: "MICROCONTROLLER_NXP", base: Microcontroller, manufacturer: NXP},
	SensorBosch:                {name: "SENSOR_BOSCH", base: Sensor, manufacturer: Bosch},
	SensorST:                   {name: "SENSOR_ST", base: Sensor, manufacturer: STMicro},
	SensorTI:                   {name: "SENSOR_TI", base: Sensor, manufacturer: TexasInstruments},
	RFICNordic:                 {name: "RF_IC_NORDIC", base: RFIC, manufacturer: Nordic},
	RFICSkyworks:               {name: "RF_IC_SKYWORKS", base: RFIC, manufacturer: Skyworks},
	RFICQorvo:                  {name: "RF_IC_QORVO", base: RFIC, manufacturer: Qorvo},
	RFICTI:                     {name: "RF_IC_TI", base: RFIC, manufacturer: TexasInstruments},
	LogicTI:                    {name: "LOGIC_IC_TI", base: LogicIC, manufacturer: TexasInstruments},
	LogicNexperia:              {name: "LOGIC_IC_NEXPERIA", base: LogicIC, manufacturer: Nexperia},
	RegulatorTI:                {name: "VOLTAGE_REGULATOR_TI", base: VoltageRegulator, manufacturer: TexasInstruments},
}

// String returns the upper-case tag, e.g. "MOSFET_NEXPERIA"
func (t ComponentType) String() string {
	if info, ok := typeTable[t]; ok {
		return info.name
	}
	return "UNKNOWN"
}

// Base returns the base tag of a variant, or t itself for base tags
func (t ComponentType) Base() ComponentType {
	info, ok := typeTable[t]
	if !ok {
		return Unknown
	}
	if info.base == Unknown {
		return t
	}
	return info.base
}

// IsVariant reports whether t is a manufacturer-qualified sub-variant
func (t ComponentType) IsVariant() bool {
	return t.Base() != t
}

// Is reports whether t equals other or refines it
func (t ComponentType) Is(other ComponentType) bool {
	return t == other || t.Base() == other
}

// Manufacturer returns the manufacturer a variant is qualified by
func (t ComponentType) Manufacturer() ManufacturerID {
	return typeTable[t].manufacturer
}

// Category returns the similarity category of the type's base tag
func (t ComponentType) Category() Category {
	switch t.Base() {
	case Resistor:
		return CategoryResistor
	case Capacitor:
		return CategoryCapacitor
	case Inductor:
		return CategoryInductor
	case Diode, Transistor, MOSFET, LED:
		return CategoryDiscrete
	case Connector:
		return CategoryConnector
	case Microcontroller:
		return CategoryMicrocontroller
	case Sensor:
		return CategorySensor
	case RFIC:
		return CategoryRF
	case LogicIC:
		return CategoryLogic
	case OpAmp, VoltageRegulator:
		return CategoryAnalog
	default:
		return CategoryOther
	}
}

// Valid reports whether t is a declared tag
func (t ComponentType) Valid() bool {
	_, ok := typeTable[t]
	return ok
}

// ParseComponentType resolves a tag name such as "MOSFET" or "mosfet_nexperia"
func ParseComponentType(s string) (ComponentType, bool) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.ReplaceAll(name, "-", "_")
	for t, info := range typeTable {
		if info.name == name {
			return t, true
		}
	}
	return Unknown, false
}

// ComponentTypes returns every declared tag in ordinal order
func ComponentTypes() []ComponentType {
	types := make([]ComponentType, 0, len(typeTable))
	for t := Unknown; t <= RegulatorTI; t++ {
		if _, ok := typeTable[t]; ok {
			types = append(types, t)
		}
	}
	return types
}
