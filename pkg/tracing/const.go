package tracing

// Span attribute keys used by modcreator
const (
	AttrKeyModcreatorErrorCode       = "modcreator.error.code"
	AttrKeyModcreatorModuleName      = "modcreator.module.name"
	AttrKeyModcreatorModuleSlot      = "modcreator.module.slot"
	AttrKeyModcreatorModuleDir       = "modcreator.module.dir"
	AttrKeyModcreatorResourcePath    = "modcreator.resource.path"
	AttrKeyModcreatorResourceCount   = "modcreator.resource.count"
	AttrKeyModcreatorDependencyCount = "modcreator.dependency.count"
)
