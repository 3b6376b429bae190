package rules

import "cmakecheck/internal/diag"

// Documentation links shared across the catalogue.
var (
	linkMinimumRequired = diag.NewLinkDesc(
		"https://cmake.org/cmake/help/latest/command/cmake_minimum_required.html", "cmake_minimum_required()")
	linkProject              = diag.NewLink("https://cmake.org/cmake/help/latest/command/project.html")
	linkAddLibrary           = diag.NewLink("https://cmake.org/cmake/help/latest/command/add_library.html")
	linkSetTargetProperties  = diag.NewLink("https://cmake.org/cmake/help/latest/command/set_target_properties.html")
	linkTargetCompileDefs    = diag.NewLink("https://cmake.org/cmake/help/latest/command/target_compile_definitions.html")
	linkTargetCompileFeat    = diag.NewLink("https://cmake.org/cmake/help/latest/command/target_compile_features.html")
	linkTargetCompileOpts    = diag.NewLink("https://cmake.org/cmake/help/latest/command/target_compile_options.html")
	linkTargetIncludeDirs    = diag.NewLink("https://cmake.org/cmake/help/latest/command/target_include_directories.html")
	linkTargetLinkLibraries  = diag.NewLink("https://cmake.org/cmake/help/latest/command/target_link_libraries.html")
	linkFindPackage          = diag.NewLink("https://cmake.org/cmake/help/latest/command/find_package.html")
	linkExternalProject      = diag.NewLink("https://cmake.org/cmake/help/latest/module/ExternalProject.html")
	linkFindThreads          = diag.NewLink("https://cmake.org/cmake/help/latest/module/FindThreads.html")
	linkInstallRpath         = diag.NewLink("https://cmake.org/cmake/help/latest/prop_tgt/INSTALL_RPATH.html")
	linkPIC                  = diag.NewLink("https://cmake.org/cmake/help/latest/prop_tgt/POSITION_INDEPENDENT_CODE.html")
	linkCKnownFeatures       = diag.NewLink("https://cmake.org/cmake/help/latest/prop_gbl/CMAKE_C_KNOWN_FEATURES.html")
	linkCXXKnownFeatures     = diag.NewLink("https://cmake.org/cmake/help/latest/prop_gbl/CMAKE_CXX_KNOWN_FEATURES.html")
	linkEffectiveModernCMake = diag.NewLinkDesc(
		"https://gist.github.com/mbinna/c61dbb39bca0e4fb7d1f73b0d66a4fd1", "Effective Modern CMake")
	linkScopes = diag.NewLinkDesc(
		"https://leimao.github.io/blog/CMake-Public-Private-Interface/", "Public vs. Private vs. Interface")
)
