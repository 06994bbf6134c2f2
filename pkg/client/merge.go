package client

// mergeItemPatch builds the full update record the remote expects from
// the current item and the caller's overrides.
//
// Name, description, quantity, and location are always sent: the
// override when supplied, the current value otherwise. Labels are
// replaced wholesale when the patch carries a slice (even an empty one);
// with a nil slice the current labels carry over, and an item with no
// labels sends no labelIds key at all. Extended fields are pure
// partial-patch: sent only when explicitly supplied, never defaulted
// from current state.
func mergeItemPatch(current *Item, patch ItemPatch) itemUpdate {
	update := itemUpdate{
		Name:        current.Name,
		Description: current.Description,
		Quantity:    1,
	}
	if current.Quantity != nil {
		update.Quantity = *current.Quantity
	}
	if current.Location != nil {
		update.LocationID = current.Location.ID
	}

	if patch.Name != nil {
		update.Name = *patch.Name
	}
	if patch.Description != nil {
		update.Description = *patch.Description
	}
	if patch.Quantity != nil {
		update.Quantity = *patch.Quantity
	}
	if patch.LocationID != nil {
		update.LocationID = *patch.LocationID
	}

	switch {
	case patch.LabelIDs != nil:
		update.LabelIDs = patch.LabelIDs
	case len(current.Labels) > 0:
		ids := make([]string, len(current.Labels))
		for i, label := range current.Labels {
			ids[i] = label.ID
		}
		update.LabelIDs = ids
	}

	update.Insured = patch.Insured
	update.Archived = patch.Archived
	update.AssetID = patch.AssetID
	update.SerialNumber = patch.SerialNumber
	update.ModelNumber = patch.ModelNumber
	update.Manufacturer = patch.Manufacturer
	update.PurchasePrice = patch.PurchasePrice
	update.Notes = patch.Notes

	return update
}
