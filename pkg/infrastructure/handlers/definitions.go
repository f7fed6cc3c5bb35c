package handlers

// DefaultDefinitions returns the built-in catalog: the generic definition
// followed by one definition per supported manufacturer. Packaging rules
// are tried in this order.
func DefaultDefinitions() []Definition {
	return []Definition{
		genericDefinition(),
		wurthDefinition(),
		nexperiaDefinition(),
		renesasDefinition(),
		tiDefinition(),
		vishayDefinition(),
		yageoDefinition(),
		murataDefinition(),
		kemetDefinition(),
		infineonDefinition(),
		stDefinition(),
		microchipDefinition(),
		nxpDefinition(),
		onsemiDefinition(),
		molexDefinition(),
		teDefinition(),
		boschDefinition(),
		nordicDefinition(),
		skyworksDefinition(),
		qorvoDefinition(),
	}
}

// DefaultCatalog compiles DefaultDefinitions
func DefaultCatalog() (*Catalog, error) {
	return NewCatalog(DefaultDefinitions())
}
