package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vsinha/mpn/pkg/domain/entities"
	"github.com/vsinha/mpn/pkg/domain/services"
	"github.com/vsinha/mpn/pkg/infrastructure/registry/memory"
)

func newDefaultCatalog(t *testing.T) *Catalog {
	t.Helper()
	c, err := DefaultCatalog()
	require.NoError(t, err)
	return c
}

func newCatalogDetector(t *testing.T, c *Catalog) *services.ComponentTypeDetector {
	t.Helper()
	b := memory.NewBuilder(c.PatternCount())
	require.NoError(t, c.RegisterPatterns(b))
	return services.NewComponentTypeDetector(c.Normalizer(), b.Build(), c)
}

func TestDefaultCatalog(t *testing.T) {
	c := newDefaultCatalog(t)

	require.NotNil(t, c.Generic())
	assert.True(t, c.Generic().Generic())
	assert.Len(t, c.Handlers(), len(DefaultDefinitions()))
	assert.Greater(t, c.PatternCount(), 100)

	h, ok := c.Handler(entities.Renesas)
	require.True(t, ok)
	assert.Equal(t, "Renesas", h.Name())

	_, ok = c.Handler("acme")
	assert.False(t, ok)
}

func TestNewCatalog_Duplicates(t *testing.T) {
	t.Run("duplicate id", func(t *testing.T) {
		_, err := NewCatalog([]Definition{testDefinition(), testDefinition()})
		assert.ErrorIs(t, err, ErrDuplicateHandler)
	})

	t.Run("alias claimed twice", func(t *testing.T) {
		other := renesasDefinition()
		other.Aliases = append(other.Aliases, "Nexperia")
		_, err := NewCatalog([]Definition{testDefinition(), other})
		assert.ErrorIs(t, err, ErrDuplicateHandler)
	})

	t.Run("invalid packaging rule", func(t *testing.T) {
		def := testDefinition()
		def.Packaging = []entities.SuffixRule{{Name: "broken", Pattern: `(`}}
		_, err := NewCatalog([]Definition{def})
		assert.ErrorIs(t, err, ErrInvalidDefinition)
	})
}

func TestCatalog_ResolveManufacturer(t *testing.T) {
	c := newDefaultCatalog(t)

	testCases := []struct {
		name string
		want entities.ManufacturerID
	}{
		{"Würth Elektronik", entities.Wurth},
		{"WURTH ELEKTRONIK", entities.Wurth},
		{"wurth", entities.Wurth},
		{"TI", entities.TexasInstruments},
		{"Texas Instruments Incorporated", entities.TexasInstruments},
		{"Texas Instruments Inc.", entities.TexasInstruments},
		{"Nexperia USA Inc.", entities.Nexperia},
		{"ON Semiconductor", entities.Onsemi},
		{"STMicroelectronics", entities.STMicro},
		{"Vishay Semiconductors", entities.Vishay},
		{"Atmel", entities.Microchip},
		{"Acme Parts", entities.ManufacturerID("acmeparts")},
		{"   ", entities.ManufacturerNone},
		{"", entities.ManufacturerNone},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.ResolveManufacturer(tc.name))
		})
	}
}

func TestCatalog_Normalizer(t *testing.T) {
	n := newDefaultCatalog(t).Normalizer()

	testCases := []struct {
		raw  string
		want string
	}{
		{"PMBT2222A,215", "PMBT2222A"},
		{"LPC1768FBD100,551", "LPC1768FBD100"},
		{"BC847B,215", "BC847B"},
		{"XYZ123,215", "XYZ123,215"},
		{"CRCW0603,100", "CRCW0603,100"},
		{"SN74HC244DR", "SN74HC244D"},
		{"TPS7A0233PDBVR", "TPS7A0233PDBV"},
		{"IRLML6402TRPBF", "IRLML6402"},
		{"MCP9808T-E/MS", "MCP9808-E/MS"},
		{"ATMEGA328P-AUR", "ATMEGA328P-AU"},
		{"STM32F103C8T6TR", "STM32F103C8T6"},
		{"MMBT3904LT1G", "MMBT3904L"},
		{"SI2302CDS-T1-GE3", "SI2302CDS"},
		{"43650-0200", "0436500200"},
		{"22-23-2021", "0022232021"},
		{"NRF52832-QFAA-R7", "NRF52832-QFAA"},
		{"QPF4206SR", "QPF4206"},
		{"SMBJ5.0A-TR", "SMBJ5.0A"},
		{"BZX84-C5V1", "BZX84-C5V1"},
		{"R5F100LEAFB#30", "R5F100LEAFB#30"},
		{"61300211121", "61300211121"},
	}

	for _, tc := range testCases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, n.Normalize(tc.raw))
		})
	}
}

func TestCatalog_Classification(t *testing.T) {
	c := newDefaultCatalog(t)
	d := newCatalogDetector(t, c)

	testCases := []struct {
		mpn  string
		hint string
		want entities.ComponentType
	}{
		{"61300211121", "", entities.ConnectorWurth},
		{"PMBT2222A,215", "", entities.TransistorNexperia},
		{"R5F100LEAFB#30", "", entities.MicrocontrollerRenesasRL78},
		{"R5F51303ADFM", "", entities.MicrocontrollerRenesasRX},
		{"BZX84-C5V1", "", entities.DiodeNexperia},
		{"BZX84-C5V1", "onsemi", entities.Diode},
		{"PSMN3R5-30YLT", "", entities.MOSFETNexperia},
		{"SN74HC244DR", "", entities.LogicTI},
		{"74HC244D,653", "Nexperia", entities.LogicNexperia},
		{"74HC244D", "Diodes Inc", entities.LogicIC},
		{"GRM188R71H104KA93D", "", entities.CapacitorMurata},
		{"RC0603FR-0710KL", "", entities.ResistorYageo},
		{"CRCW060310K0FKEA", "", entities.ResistorVishay},
		{"C0603C104K5RACTU", "", entities.CapacitorKemet},
		{"IRLML6402TRPBF", "", entities.MOSFETInfineon},
		{"NTR4101PT1G", "", entities.MOSFETOnsemi},
		{"STM32F103C8T6", "", entities.MicrocontrollerST},
		{"LIS3DHTR", "", entities.SensorST},
		{"PIC16F18446-I/SS", "", entities.MicrocontrollerMicrochip},
		{"LPC1768FBD100", "", entities.MicrocontrollerNXP},
		{"0022232021", "", entities.ConnectorMolex},
		{"1-640456-0", "", entities.ConnectorTE},
		{"BME280", "", entities.SensorBosch},
		{"NRF52832-QFAA", "", entities.RFICNordic},
		{"SKY66112-11", "", entities.RFICSkyworks},
		{"RFFM6204", "", entities.RFICQorvo},
		{"CC2500RGPR", "", entities.RFICTI},
		{"TPS54331DR", "", entities.RegulatorTI},
		{"TMP117AIDRVR", "", entities.SensorTI},
		{"2N3904", "", entities.Transistor},
		{"1N4148", "", entities.Diode},
		{"LM358", "", entities.OpAmp},
		{"ESP32-WROOM-32", "", entities.Microcontroller},
		{"XYZZY", "", entities.Unknown},
	}

	for _, tc := range testCases {
		t.Run(tc.mpn+"/"+tc.hint, func(t *testing.T) {
			assert.Equal(t, tc.want, d.DetectTypeWithHint(tc.mpn, tc.hint))
		})
	}
}

func TestCatalog_ExtractAttributes(t *testing.T) {
	c := newDefaultCatalog(t)

	testCases := []struct {
		manufacturer entities.ManufacturerID
		mpn          string
		want         entities.ExtractedAttributes
	}{
		{entities.Wurth, "61300211121", entities.ExtractedAttributes{
			entities.AttrSeries: "61300", entities.AttrPinCount: "2", entities.AttrVariantCode: "1", entities.AttrPackageCode: "1",
			entities.AttrPitchCode: "2.54",
		}},
		{entities.Nexperia, "PMBT2222A,215", entities.ExtractedAttributes{
			entities.AttrSeries: "PMBT", entities.AttrPackageCode: "SOT23", entities.AttrRatingToken: "2222A",
		}},
		{entities.Nexperia, "BZX84-C5V1", entities.ExtractedAttributes{
			entities.AttrPackageCode: "SOT23", entities.AttrVoltageClass: "5V1", entities.AttrTolerance: "5",
		}},
		{entities.Nexperia, "PSMN3R5-30YLT", entities.ExtractedAttributes{
			entities.AttrPackageCode: "LFPAK56", entities.AttrVoltageClass: "30", entities.AttrRatingToken: "3R5-30",
			entities.AttrVariantCode: "logic-level",
		}},
		{entities.Nexperia, "PSMN7R0-100PS", entities.ExtractedAttributes{
			entities.AttrPackageCode: "TO220", entities.AttrVoltageClass: "100", entities.AttrVariantCode: "standard-level",
		}},
		{entities.Renesas, "R5F100LEAFB#30", entities.ExtractedAttributes{
			entities.AttrSeries: "R5F100", entities.AttrPackageCode: "LEAFB", entities.AttrPinCount: "64", entities.AttrMemoryCode: "E",
		}},
		{entities.Renesas, "R5F51303ADFM", entities.ExtractedAttributes{
			entities.AttrSeries: "R5F5130", entities.AttrPackageCode: "ADFM", entities.AttrPinCount: "64",
		}},
		{entities.Yageo, "RC0603FR-0710KL", entities.ExtractedAttributes{
			entities.AttrPackageCode: "0603", entities.AttrValue: "10000", entities.AttrTolerance: "1",
		}},
		{entities.Murata, "GRM188R71H104KA93D", entities.ExtractedAttributes{
			entities.AttrPackageCode: "0603", entities.AttrDielectric: "X7R", entities.AttrVoltageClass: "50",
			entities.AttrValue: "100000", entities.AttrTolerance: "10",
		}},
		{entities.Kemet, "C0603C104K5RACTU", entities.ExtractedAttributes{
			entities.AttrPackageCode: "0603", entities.AttrDielectric: "X7R", entities.AttrVoltageClass: "50", entities.AttrValue: "100000",
		}},
		{entities.Vishay, "CRCW060310K0FKEA", entities.ExtractedAttributes{
			entities.AttrValue: "10000", entities.AttrTolerance: "1", entities.AttrTempCoefficient: "100",
		}},
		{entities.TexasInstruments, "SN74HC244DR", entities.ExtractedAttributes{
			entities.AttrFamily: "HC", entities.AttrFunction: "244", entities.AttrPackageCode: "SOIC",
		}},
		{entities.TexasInstruments, "TMP117AIDRVR", entities.ExtractedAttributes{
			entities.AttrMeasures: "temperature", entities.AttrInterface: "I2C", entities.AttrPackageCode: "WSON6",
		}},
		{entities.STMicro, "STM32F103C8T6", entities.ExtractedAttributes{
			entities.AttrSeries: "STM32F103", entities.AttrPinCount: "48", entities.AttrMemoryCode: "8",
			entities.AttrPackageCode: "LQFP", entities.AttrTemperatureGrade: "6",
		}},
		{entities.Microchip, "PIC16F18446-I/SS", entities.ExtractedAttributes{
			entities.AttrTemperatureGrade: "I", entities.AttrPackageCode: "SSOP",
		}},
		{entities.NXP, "LPC1768FBD100", entities.ExtractedAttributes{
			entities.AttrSeries: "LPC1768", entities.AttrPinCount: "100", entities.AttrPackageCode: "LQFP",
		}},
		{entities.Onsemi, "MMBT3904LT1G", entities.ExtractedAttributes{
			entities.AttrSeries: "MMBT", entities.AttrPackageCode: "SOT23",
		}},
		{entities.Infineon, "IRLML6402TRPBF", entities.ExtractedAttributes{
			entities.AttrSeries: "IRLML", entities.AttrPackageCode: "SOT23",
		}},
		{entities.Molex, "22-23-2021", entities.ExtractedAttributes{
			entities.AttrSeries: "KK254", entities.AttrPinCount: "2", entities.AttrPitchCode: "2.54", entities.AttrRows: "1",
		}},
		{entities.TEConnectivity, "1-640456-0", entities.ExtractedAttributes{
			entities.AttrPinCount: "10", entities.AttrPitchCode: "2.54",
		}},
		{entities.Bosch, "BME280", entities.ExtractedAttributes{
			entities.AttrMeasures: "humidity,pressure,temperature",
		}},
		{entities.Nordic, "NRF52832-QFAA-R7", entities.ExtractedAttributes{
			entities.AttrSeries: "NRF52832", entities.AttrPackageCode: "QFN", entities.AttrFrequencyBand: "2360-2500",
		}},
		{entities.Skyworks, "SKY66112-11", entities.ExtractedAttributes{
			entities.AttrFrequencyBand: "2400-2483.5", entities.AttrPowerRating: "20",
		}},
		{entities.Qorvo, "RFFM6204", entities.ExtractedAttributes{
			entities.AttrSeries: "RFFM6204", entities.AttrFrequencyBand: "2400-2500",
		}},
		{entities.ManufacturerNone, "1N4148", entities.ExtractedAttributes{
			entities.AttrPackageCode: "DO35", entities.AttrRatingToken: "4148",
		}},
		{entities.ManufacturerNone, "1N4148W-7-F", entities.ExtractedAttributes{
			entities.AttrPackageCode: "SOD123", entities.AttrRatingToken: "4148W",
		}},
		{entities.ManufacturerNone, "1N4148WS", entities.ExtractedAttributes{
			entities.AttrPackageCode: "SOD323",
		}},
		{entities.ManufacturerNone, "1N4007", entities.ExtractedAttributes{
			entities.AttrPackageCode: "DO41",
		}},
		{entities.ManufacturerNone, "ERJ-3EKF1002V", entities.ExtractedAttributes{
			entities.AttrPackageCode: "0603", entities.AttrValue: "10000",
		}},
	}

	for _, tc := range testCases {
		t.Run(string(tc.manufacturer)+"/"+tc.mpn, func(t *testing.T) {
			attrs := c.ExtractAttributes(tc.manufacturer, tc.mpn, entities.Unknown)
			for name, want := range tc.want {
				assert.Equal(t, want, attrs[name], name)
			}
		})
	}
}

func TestCatalog_ExtractAttributesFallsBackToGeneric(t *testing.T) {
	c := newDefaultCatalog(t)

	attrs := c.ExtractAttributes(entities.Renesas, "BZX84-C5V1", entities.Unknown)
	assert.Equal(t, "SOT23", attrs[entities.AttrPackageCode])
	assert.False(t, attrs.Has(entities.AttrManufacturer), "generic handler does not stamp a manufacturer")

	attrs = c.ExtractAttributes("acme", "2N3904", entities.Unknown)
	assert.Equal(t, "TO92", attrs[entities.AttrPackageCode])

	assert.Empty(t, c.ExtractAttributes(entities.Renesas, "XYZZY", entities.Unknown))
}

func TestCatalog_IsReplacementCompatible(t *testing.T) {
	c := newDefaultCatalog(t)

	testCases := []struct {
		name         string
		manufacturer entities.ManufacturerID
		a, b         string
		want         bool
	}{
		{"psmn package suffix", entities.Nexperia, "PSMN3R5-30YLT", "PSMN3R5-30YLU", true},
		{"psmn different rds", entities.Nexperia, "PSMN3R5-30YLT", "PSMN1R0-30YLT", false},
		{"psmn gate level", entities.Nexperia, "PSMN3R5-30YLT", "PSMN3R5-30YST", false},
		{"psmn package letter", entities.Nexperia, "PSMN3R5-30YLT", "PSMN3R5-30BLT", false},
		{"renesas version suffix", entities.Renesas, "R5F100LEAFB#30", "R5F100LEAFB#V0", true},
		{"renesas package differs", entities.Renesas, "R5F100LEAFB", "R5F100LEAFA", false},
		{"wurth plating variant", entities.Wurth, "61300211121", "61300211122", true},
		{"wurth pin count differs", entities.Wurth, "61300211121", "61300311121", false},
		{"yageo packing", entities.Yageo, "RC0603FR-0710KL", "RC0603FR-1310KL", true},
		{"yageo tolerance", entities.Yageo, "RC0603FR-0710KL", "RC0603JR-0710KL", false},
		{"nordic variant", entities.Nordic, "NRF52832-QFAA", "NRF52832-QFAB", true},
		{"generic fallback", "acme", "2N3904", "2N3904BU", true},
		{"axial and SOD-123 signal diode", entities.ManufacturerNone, "1N4148", "1N4148W-7-F", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, c.IsReplacementCompatible(tc.manufacturer, tc.a, tc.b))
		})
	}
}
