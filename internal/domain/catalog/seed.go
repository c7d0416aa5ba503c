package catalog

// DefaultEntries is the built-in furniture pricing table. The catalog source
// adapter serves it as-is; deployments with a managed table can swap the source
// without touching this package.
func DefaultEntries() []Entry {
	return []Entry{
		{Type: "sofa", BasePrice: 300, Description: "Sofá", NeedsDisassemble: true, MaxQuantity: 10},
		{Type: "bed", BasePrice: 250, Description: "Cama", NeedsDisassemble: true, MaxQuantity: 10},
		{Type: "wardrobe", BasePrice: 350, Description: "Guarda-roupa", NeedsDisassemble: true, MaxQuantity: 10},
		{Type: "table", BasePrice: 150, Description: "Mesa", NeedsDisassemble: true, MaxQuantity: 15},
		{Type: "chair", BasePrice: 40, Description: "Cadeira", MaxQuantity: 50},
		{Type: "desk", BasePrice: 180, Description: "Escrivaninha", NeedsDisassemble: true, MaxQuantity: 10},
		{Type: "refrigerator", BasePrice: 280, Description: "Geladeira", IsFragile: true, MaxQuantity: 5},
		{Type: "washing_machine", BasePrice: 220, Description: "Máquina de lavar", MaxQuantity: 5},
		{Type: "tv", BasePrice: 120, Description: "Televisão", IsFragile: true, MaxQuantity: 10},
		{Type: "mirror", BasePrice: 80, Description: "Espelho", IsFragile: true, MaxQuantity: 20},
		{Type: "piano", BasePrice: 900, Description: "Piano", IsFragile: true, NeedsDisassemble: true, MaxQuantity: 2},
		{Type: "box", BasePrice: 15, Description: "Caixa de mudança", MaxQuantity: 50},
		{Type: FallbackType, BasePrice: 100, Description: "Outro item", MaxQuantity: 50},
	}
}
