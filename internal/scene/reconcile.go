package scene

import "github.com/MKhiriev/scene-keeper/models"

// LastWriterWins is the default [Reconciler].
//
// Remote elements are walked in stored order. For every id present on both
// sides the local copy is kept when it is being interacted with locally, when
// it carries a higher version, or when versions tie and the local
// versionNonce is lower; otherwise the remote copy wins. Elements only known
// locally are appended afterwards in local order.
type LastWriterWins struct{}

// Reconcile implements [Reconciler].
func (LastWriterWins) Reconcile(local, remote models.Elements, mctx models.MergeContext) models.Elements {
	localByID := make(map[string]models.Element, len(local))
	for _, el := range local {
		if _, seen := localByID[el.ID]; !seen {
			localByID[el.ID] = el
		}
	}

	reconciled := make(models.Elements, 0, max(len(local), len(remote)))
	added := make(map[string]struct{}, len(local)+len(remote))

	for _, remoteEl := range remote {
		if _, done := added[remoteEl.ID]; done {
			continue
		}

		localEl, found := localByID[remoteEl.ID]
		if found && shouldDiscardRemote(mctx, localEl, remoteEl) {
			reconciled = append(reconciled, localEl)
		} else {
			reconciled = append(reconciled, remoteEl)
		}
		added[remoteEl.ID] = struct{}{}
	}

	for _, localEl := range local {
		if _, done := added[localEl.ID]; done {
			continue
		}
		reconciled = append(reconciled, localEl)
		added[localEl.ID] = struct{}{}
	}

	return reconciled
}

func shouldDiscardRemote(mctx models.MergeContext, local, remote models.Element) bool {
	switch {
	case mctx.IsActive(local.ID):
		return true
	case local.Version > remote.Version:
		return true
	case local.Version == remote.Version && local.VersionNonce < remote.VersionNonce:
		return true
	default:
		return false
	}
}
