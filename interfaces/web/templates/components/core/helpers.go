package core

import "superlists/interfaces/web/presenters"

func hasError(form presenters.ItemFormVM) bool {
	return form.Error != ""
}

func hasCSRF(form presenters.ItemFormVM) bool {
	return form.CSRFField != "" && form.CSRFToken != ""
}
