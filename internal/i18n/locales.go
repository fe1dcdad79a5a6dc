package i18n

// String tables carried over from the web app's locale files.
var locales = map[string]map[string]string{
	"en": {
		"appName":        "Cost Per Day",
		"totalDailyCost": "Total Daily Cost",
		"perDay":         "/day",

		"noItems":        "No items yet",
		"purchaseAmount": "Purchase amount",
		"purchaseDate":   "Purchase date",
		"daysAgo":        "days",
		"edit":           "Edit",

		"addNewItem":    "Add New Item",
		"editItem":      "Edit Item",
		"itemName":      "Item Name",
		"enterItemName": "Enter item name",
		"price":         "Price",
		"enterPrice":    "Enter price",
		"date":          "Purchase Date",
		"save":          "Save",
		"deleteItem":    "Delete Item",

		"confirmDelete":      "Confirm Delete",
		"deleteConfirmation": "Are you sure you want to delete this item? This action cannot be undone.",
		"cancel":             "Cancel",
		"confirm":            "Confirm",

		"settings":       "Settings",
		"language":       "Language",
		"selectLanguage": "Select Language",
		"currency":       "Currency",
		"selectCurrency": "Select Currency",
		"dataManagement": "Data Management",
		"exportData":     "Export Data",
		"importData":     "Import Data",
	},
	"fr": {
		"appName":        "Calculateur de Coût Quotidien",
		"totalDailyCost": "Coût Quotidien Total",
		"perDay":         "/jour",

		"noItems":        "Pas d'articles pour le moment",
		"purchaseAmount": "Montant d'achat",
		"purchaseDate":   "Date d'achat",
		"daysAgo":        "jours",
		"edit":           "Modifier",

		"addNewItem":    "Ajouter un Article",
		"editItem":      "Modifier l'Article",
		"itemName":      "Nom de l'Article",
		"enterItemName": "Entrez le nom de l'article",
		"price":         "Prix",
		"enterPrice":    "Entrez le prix",
		"date":          "Date d'Achat",
		"save":          "Enregistrer",
		"deleteItem":    "Supprimer l'Article",

		"confirmDelete":      "Confirmer la Suppression",
		"deleteConfirmation": "Êtes-vous sûr de vouloir supprimer cet article ? Cette action ne peut pas être annulée.",
		"cancel":             "Annuler",
		"confirm":            "Confirmer",

		"settings":       "Paramètres",
		"language":       "Langue",
		"selectLanguage": "Sélectionner une Langue",
		"currency":       "Devise",
		"selectCurrency": "Sélectionner une Devise",
		"dataManagement": "Gestion des Données",
		"exportData":     "Exporter les Données",
		"importData":     "Importer les Données",
	},
	"zh": {
		"appName":        "每日成本",
		"totalDailyCost": "日均总花费",
		"perDay":         "/天",

		"noItems":        "暂无物品",
		"purchaseAmount": "购买金额",
		"purchaseDate":   "购买日期",
		"daysAgo":        "天",
		"edit":           "修改",

		"addNewItem":    "添加新物品",
		"editItem":      "修改物品",
		"itemName":      "物品名称",
		"enterItemName": "请输入物品名称",
		"price":         "价格",
		"enterPrice":    "请输入价格",
		"date":          "购买日期",
		"save":          "保存",
		"deleteItem":    "删除物品",

		"confirmDelete":      "确认删除",
		"deleteConfirmation": "确定要删除这个物品吗？此操作不可撤销。",
		"cancel":             "取消",
		"confirm":            "确认删除",

		"settings":       "设置",
		"language":       "语言",
		"selectLanguage": "选择语言",
		"currency":       "货币",
		"selectCurrency": "选择货币",
		"dataManagement": "数据管理",
		"exportData":     "导出数据",
		"importData":     "导入数据",
	},
}
