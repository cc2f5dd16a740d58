// SPDX-License-Identifier: MPL-2.0

package printout

import "fmt"

// Styleguide writes one sample of every operation. The abort returned by the
// critical sample is discarded.
func (p *Printer) Styleguide() {
	p.Plain("It is a sample 'Plain'.")
	p.Plain(fmt.Sprintf("It is a sample 'Plain' including '%s' from 'YesOrNo(true)'.", p.YesOrNo(true, true)))
	p.Plain(fmt.Sprintf("It is a sample 'Plain' including '%s' from 'YesOrNo(false)'.", p.YesOrNo(false, true)))
	p.Info(fmt.Sprintf("It is an 'Info' line including '%s' from 'YesOrNo(false, false)'.", p.YesOrNo(false, false)))

	p.Header("This is a 'Header'.")

	p.TitleInfo("This is a 'TitleInfo' title.")
	p.Info("This is an 'Info' line.")

	p.TitleWarning("This is a 'TitleWarning' title.")
	p.Warning("This is a 'Warning' line.")

	p.TitleError("This is a 'TitleError' title.")
	p.Error("This is an 'Error' line.")

	p.TitleSuccess("This is a 'TitleSuccess' title.")
	p.Success("This is a 'Success' line.")

	p.DotItem("This is a 'DotItem' line.", 0)
	p.DotItem("This is an indented 'DotItem' line.", 1)
	p.TreeItem("This is a 'TreeItem' line.", false, 0)
	p.TreeItem("This is a 'TreeItem' line with ends=true.", true, 0)
	p.TreeList([]string{"First item with TreeList", "Another one"}, 0)

	p.BlockSuccess("This is a 'BlockSuccess' block.")
	p.BlockWarning("This is a 'BlockWarning' block.")

	_ = p.Critical("This is a 'Critical' block (in real usage it aborts the task).")
}
