/*
Package patch rewrites Win32 platform markers in a project file.

	+-----------+     +------------+     +-------------+
	|   read    | --> |  replace   | --> |    write    |
	| (os.Open) |     | (pkg/text) |     | (same path) |
	+-----------+     +------------+     +-------------+

The default rule set is platform.X64Rules:

	Release|Win32               -> Release|x64
	Debug|Win32                 -> Debug|x64
	<Platform>Win32</Platform>  -> <Platform>x64</Platform>

Matching is literal substring matching. Anything else in the file,
including toolset paths like mkspecs\win32-msvc, is left as is.

🔍 Example:

	res, err := patch.New(patch.Options{}).Patch(ctx, "Editor.vcxproj")
	if err != nil {
		return err
	}
	fmt.Println(res.Message())
*/
package patch
