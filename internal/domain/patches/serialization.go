package patches

import (
	"github.com/mouse-blink/bundlepatch/internal/domain"
	m "github.com/mouse-blink/bundlepatch/internal/model"
)

// Serialization materializes only the first command/file approval of a turn.
// The loop gains a z0 flag that is set once an approval item is pushed; the
// remaining approvals stay queued until the current one resolves. All four
// sites must be applied for the patch to count as present.
func Serialization() m.Patch {
	return m.Patch{
		Name:    SerializationName,
		Title:   "approval serialization",
		Concern: "approval prompt serialization",
		Sites: []m.Site{
			{
				Name: "approval-loop-open",
				Variants: []m.Variant{{
					Label: domain.BaselineLabel,
					Prior: "for(const a of e)switch(a.method){case\"item/commandExecution/requestApproval\":{",
					Next: "let z0=!1;for(const a of e){if(z0&&(a.method===\"item/commandExecution/requestApproval\"||" +
						"a.method===\"item/fileChange/requestApproval\"))continue;switch(a.method){case\"item/commandExecution/requestApproval\":{",
				}},
			},
			{
				Name: "exec-approval-flag",
				Variants: []m.Variant{{
					Label: domain.BaselineLabel,
					Prior: execApprovalPush + ");break}case\"item/fileChange/requestApproval\":{",
					Next:  execApprovalPush + "),z0=!0;break}case\"item/fileChange/requestApproval\":{",
				}},
			},
			{
				Name: "file-approval-flag",
				Variants: []m.Variant{{
					Label: domain.BaselineLabel,
					Prior: fileApprovalAttach + ";break}case\"item/tool/requestUserInput\":{",
					Next:  fileApprovalAttach + ",z0=!0;break}case\"item/tool/requestUserInput\":{",
				}},
			},
			{
				Name: "approval-loop-close",
				Variants: []m.Variant{{
					Label: domain.BaselineLabel,
					Prior: legacyApprovalCase + "break}}const s=Sot(t.status);",
					Next:  legacyApprovalCase + "break}}}const s=Sot(t.status);",
				}},
			},
		},
	}
}

const (
	execApprovalPush = "n.push({type:\"exec\",callId:c.itemId,cwd:t.params?.cwd?t.params.cwd:null,cmd:h.length>0?h:[f]," +
		"approvalReason:c.reason,proposedExecpolicyAmendment:c.proposedExecpolicyAmendment,parsedCmd:Ice(g,!1)," +
		"output:null,approvalRequestId:l}"

	fileApprovalAttach = "d?(d.approvalRequestId=u,d.grantRoot=c.grantRoot?c.grantRoot:null):" +
		"Ot.warning(`Patch approval for unknown itemId ${c.itemId}; skipping attachment`)"

	legacyApprovalCase = "case\"applyPatchApproval\":case\"execCommandApproval\":" +
		"{Ot.warning(`Ignoring legacy approval request method: ${a.method}`);"
)
